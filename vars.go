package dropoff

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	FAMILY_EDGE   = 'x'
	FAMILY_ASSIGN = 'c'
	FAMILY_ORDER  = 'u'
)

func EdgeVar(i, j int) string {
	return "x" + strconv.Itoa(i) + "_" + strconv.Itoa(j)
}

func AssignVar(i, h int) string {
	return "c" + strconv.Itoa(i) + "_" + strconv.Itoa(h)
}

func OrderVar(i int) string {
	return "u" + strconv.Itoa(i)
}

// Var is a decoded variable name. J is unused for order variables.
type Var struct {
	Family byte
	I      int
	J      int
}

func (v Var) String() string {
	switch v.Family {
	case FAMILY_EDGE:
		return EdgeVar(v.I, v.J)
	case FAMILY_ASSIGN:
		return AssignVar(v.I, v.J)
	}
	return OrderVar(v.I)
}

// ParseVar is the inverse of EdgeVar, AssignVar and OrderVar.
func ParseVar(name string) (Var, error) {
	if len(name) < 2 {
		return Var{}, fmt.Errorf("%w: %q", ErrInvalidVar, name)
	}
	v := Var{Family: name[0]}
	rest := name[1:]
	switch v.Family {
	case FAMILY_EDGE, FAMILY_ASSIGN:
		a, b, ok := strings.Cut(rest, "_")
		if !ok {
			return Var{}, fmt.Errorf("%w: %q", ErrInvalidVar, name)
		}
		i, err := parseIndex(a)
		if err != nil {
			return Var{}, fmt.Errorf("%w: %q", ErrInvalidVar, name)
		}
		j, err := parseIndex(b)
		if err != nil {
			return Var{}, fmt.Errorf("%w: %q", ErrInvalidVar, name)
		}
		v.I, v.J = i, j
	case FAMILY_ORDER:
		i, err := parseIndex(rest)
		if err != nil {
			return Var{}, fmt.Errorf("%w: %q", ErrInvalidVar, name)
		}
		v.I = i
	default:
		return Var{}, fmt.Errorf("%w: %q", ErrInvalidVar, name)
	}
	return v, nil
}

// parseIndex accepts canonical non-negative integers only, so "x01_2" is rejected.
func parseIndex(s string) (int, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, ErrInvalidVar
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidVar
		}
	}
	return strconv.Atoi(s)
}
