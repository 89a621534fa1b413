package campaignify

import (
	"fmt"
	"strings"
)

// keywordFormat is a parsed keyword template.
//
// A template may hold at most one integer verb (%d, with optional flags and
// width such as %03d) which receives the occurrence number. "%%" is a
// literal percent sign, also in templates without a verb. Invalid templates
// are used verbatim; ValidateKeyword reports them.
type keywordFormat struct {
	tmpl     string
	numbered bool
}

func parseKeyword(tmpl string) keywordFormat {
	verbs, err := scanKeyword(tmpl)
	switch {
	case err != nil:
		return keywordFormat{tmpl: tmpl}
	case verbs == 0:
		return keywordFormat{tmpl: strings.ReplaceAll(tmpl, "%%", "%")}
	}
	return keywordFormat{tmpl: tmpl, numbered: true}
}

// format returns the keyword for the n-th rewritten URL, or "" when no
// template was given.
func (k keywordFormat) format(n int) string {
	if !k.numbered {
		return k.tmpl
	}
	return fmt.Sprintf(k.tmpl, n)
}

// ValidateKeyword checks a keyword template. An empty template is valid and
// means "no keyword".
func ValidateKeyword(tmpl string) error {
	_, err := scanKeyword(tmpl)
	return err
}

// scanKeyword counts the integer verbs of tmpl.
func scanKeyword(tmpl string) (int, error) {
	verbs := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		j := i + 1
		if j < len(tmpl) && tmpl[j] == '%' {
			i = j
			continue
		}
		for j < len(tmpl) && strings.IndexByte("+-# 0", tmpl[j]) >= 0 {
			j++
		}
		for j < len(tmpl) && tmpl[j] >= '0' && tmpl[j] <= '9' {
			j++
		}
		if j >= len(tmpl) {
			return 0, fmt.Errorf("%w: dangling %% at offset %d", ErrInvalidKeyword, i)
		}
		if tmpl[j] != 'd' {
			return 0, fmt.Errorf("%w: unsupported verb %q, only %%d is allowed", ErrInvalidKeyword, tmpl[i:j+1])
		}
		verbs++
		if verbs > 1 {
			return 0, fmt.Errorf("%w: more than one placeholder", ErrInvalidKeyword)
		}
		i = j
	}
	return verbs, nil
}
