package codec

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"datashell/internal/datatype"
	"datashell/internal/format"
)

// TOML converts object <-> string<application/toml>. TOML tables carry no
// stable order through go-toml, so parsed keys are sorted.
func TOML() *StringCodec {
	return &StringCodec{
		Name:  "toml",
		Value: datatype.Object(),
		Text:  datatype.String(format.TOML),
		Stringify: func(v any) (string, error) {
			plain, ok := Plain(v).(map[string]any)
			if !ok {
				return "", fmt.Errorf("toml: top-level value must be a table, got %T", v)
			}

			out, err := toml.Marshal(plain)
			if err != nil {
				return "", err
			}

			return string(out), nil
		},
		Parse: func(s string) (any, error) {
			var m map[string]any
			if err := toml.Unmarshal([]byte(s), &m); err != nil {
				return nil, err
			}

			return Ordered(m), nil
		},
	}
}
