package service

import "github.com/valyala/fastjson"

// BindValue fills the params from a parsed request body.
// A field is kept when its value is truthy: a non-empty string, a non-zero number,
// true, an object or an array. Non-string values are kept as their JSON text.
// Falsy or absent fields are left empty.
// When a key is duplicated, its last occurrence wins.
func (p *LostItemParams) BindValue(v *fastjson.Value) {
	o, err := v.Object()
	if err != nil {
		return
	}

	o.Visit(func(key []byte, v *fastjson.Value) {
		switch string(key) {
		case "title":
			p.Title = truthy(v)
		case "description":
			p.Description = truthy(v)
		case "category":
			p.Category = truthy(v)
		case "location":
			p.Location = truthy(v)
		case "date":
			p.Date = truthy(v)
		}
	})
}

func truthy(v *fastjson.Value) string {
	if v == nil {
		return ""
	}

	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		if v.GetFloat64() == 0 {
			return ""
		}
		return v.String()
	case fastjson.TypeTrue:
		return "true"
	case fastjson.TypeObject, fastjson.TypeArray:
		return v.String()
	default: // null & false
		return ""
	}
}
