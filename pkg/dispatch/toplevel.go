package dispatch

import (
	"strings"

	"github.com/aiseeq/cmdsh/pkg/bind"
	"github.com/aiseeq/cmdsh/pkg/coerce"
	"github.com/aiseeq/cmdsh/pkg/token"
)

// applyTopLevelOptions implements the §4.4 step that runs before command
// resolution: a leading run of tokens naming a registered option —
// `/Name=value`, `/Name:value` or the two-token `/Name value` form — is
// applied to the owning handler's field and removed from the vector. Only
// tokens preceding the command name are eligible; the first token that
// isn't a recognized top-level option ends the scan and is left, along
// with everything after it, for command resolution to see verbatim —
// otherwise a command argument that happens to look like "/Name=value"
// would be silently stolen instead of reaching the command.
func (d *Dispatcher) applyTopLevelOptions(tokens []string) ([]string, error) {
	cfg := d.cfg.TokenizerConfig

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if !isPrefixed(tok, cfg) {
			break
		}

		name, value := splitNameValue(tok[1:], cfg.DelimiterChars)
		if name == "" {
			break
		}

		opt := d.registry.Option(name)
		if opt == nil {
			break
		}

		if value == nil && i+1 < len(tokens) && !isPrefixed(tokens[i+1], cfg) {
			v := tokens[i+1]
			value = &v
			i++
		}

		if err := setOption(opt, value); err != nil {
			return nil, err
		}
		i++
	}

	return tokens[i:], nil
}

func isPrefixed(tok string, cfg token.TokenizerConfig) bool {
	return tok != "" && strings.IndexByte(cfg.PrefixChars, tok[0]) >= 0
}

func splitNameValue(stripped, delimiters string) (name string, value *string) {
	idx := strings.IndexAny(stripped, delimiters)
	if idx < 0 {
		return stripped, nil
	}
	v := stripped[idx+1:]
	return stripped[:idx], &v
}

func setOption(opt *bind.Option, value *string) error {
	item := &token.Item{Name: opt.Name, Values: []*string{value}}
	v, err := coerce.Coerce(item, opt.Type, true, opt.Default, opt.Name)
	if err != nil {
		return err
	}
	opt.Set(v)
	return nil
}
