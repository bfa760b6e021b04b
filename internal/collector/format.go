package collector

// Format renders "<group> | <from>: <text>". Delimiters inside the fields are
// written verbatim.
// Format 渲染 "<群组> | <发送者>: <文本>"，字段中的分隔符原样写入。
func Format(e Entry, placeholder string) string {
	return e.Group.Or(placeholder) + " | " + e.From.Or(placeholder) + ": " + e.Text.Or(placeholder)
}
