package gpiotest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var renderedPattern = regexp.MustCompile(`^new\("(.*)",\[(.*)\]\.to_vec\(\)\);$`)

//Render prints the sequence as an Enforcing constructor call, e.g.
//
//	new("reset",[false,true,].to_vec());
//
//Every value is followed by a comma, including the last.
func (p *MockPin) Render() string {
	var b strings.Builder
	b.WriteString(`new("`)
	b.WriteString(p.label)
	b.WriteString(`",[`)
	for _, v := range p.sequence {
		b.WriteString(strconv.FormatBool(v))
		b.WriteByte(',')
	}
	b.WriteString("].to_vec());")
	return b.String()
}

//RenderGo prints the sequence as a NewMockPin call that can be pasted into a
//Go test with a *testing.T named t in scope.
func (p *MockPin) RenderGo() string {
	vals := make([]string, len(p.sequence))
	for i, v := range p.sequence {
		vals[i] = strconv.FormatBool(v)
	}
	return fmt.Sprintf("gpiotest.NewMockPin(t, %q, []bool{%s})", p.label, strings.Join(vals, ", "))
}

//ParseRendered reads back the output of Render
func ParseRendered(s string) (label string, sequence []bool, err error) {
	m := renderedPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", nil, errors.Errorf("not a rendered pin: %q", s)
	}

	sequence = []bool{}
	body := m[2]
	if body == "" {
		return m[1], sequence, nil
	}
	if !strings.HasSuffix(body, ",") {
		return "", nil, errors.Errorf("rendered pin %s: missing trailing comma", m[1])
	}

	for i, tok := range strings.Split(strings.TrimSuffix(body, ","), ",") {
		switch tok {
		case "true":
			sequence = append(sequence, true)
		case "false":
			sequence = append(sequence, false)
		default:
			return "", nil, errors.Errorf("rendered pin %s: bad value %q at %d", m[1], tok, i+1)
		}
	}
	return m[1], sequence, nil
}

//FromRendered builds an Enforcing pin from the output of Render
func FromRendered(r Reporter, s string) (*MockPin, error) {
	label, sequence, err := ParseRendered(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed loading pin script")
	}
	return NewMockPin(r, label, sequence), nil
}
