package collector

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
)

// maxBodyBytes bounds a single payload.
const maxBodyBytes = 1 << 20

var errInvalidJSON = errors.New("payload is not valid JSON")

// Entry is one message delivered by the producer. It lives only for the
// duration of a request; only its rendered line is persisted.
// Entry 是生产者投递的一条消息，仅存在于请求期间，只有渲染后的行被持久化。
type Entry struct {
	Group     Field
	From      Field
	Text      Field
	Timestamp Field
}

// Field is a tolerant JSON scalar: strings keep their value, other JSON values
// keep their compact JSON text, null and absent fields are unset.
// Field 是宽松的 JSON 标量：字符串保留原值，其他值保留紧凑的 JSON 文本，null 与缺失视为未设置。
type Field struct {
	Value string
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = Field{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Field{Value: s, Set: true}
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return err
	}
	*f = Field{Value: buf.String(), Set: true}
	return nil
}

// Or returns the value, or placeholder when the field is unset.
func (f Field) Or(placeholder string) string {
	if !f.Set {
		return placeholder
	}
	return f.Value
}

// Float parses the field as a number.
func (f Field) Float() (float64, bool) {
	if !f.Set {
		return 0, false
	}
	v, err := strconv.ParseFloat(f.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// DecodeEntry reads a payload. Keys match exactly: "From" is not "from".
// An empty body or valid JSON that is not an object is an entry with every
// field unset; a body that is not JSON at all is an error.
// DecodeEntry 读取请求体，键名区分大小写。空请求体或非对象的合法 JSON 视为所有字段缺失；
// 非 JSON 请求体返回错误。
func DecodeEntry(r io.Reader) (Entry, error) {
	var e Entry
	data, err := io.ReadAll(io.LimitReader(r, maxBodyBytes))
	if err != nil {
		return e, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return e, nil
	}
	if !json.Valid(data) {
		return e, errInvalidJSON
	}
	if data[0] != '{' {
		return e, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return e, err
	}
	for key, field := range map[string]*Field{
		"group":     &e.Group,
		"from":      &e.From,
		"text":      &e.Text,
		"timestamp": &e.Timestamp,
	} {
		if v, ok := raw[key]; ok {
			if err := field.UnmarshalJSON(v); err != nil {
				return Entry{}, err
			}
		}
	}
	return e, nil
}
