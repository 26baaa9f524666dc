package style

import (
	"strings"

	"github.com/matzehuels/deviationview/pkg/errors"
)

// Role names one of the six paints of the gauge.
type Role int

const (
	RoleBackground Role = iota
	RoleCentral
	RoleFrontier
	RoleContour
	RoleFont
	RolePointer
)

// Roles lists every role in draw order.
var Roles = []Role{RoleBackground, RoleCentral, RoleFrontier, RoleContour, RoleFont, RolePointer}

var roleNames = [...]string{
	RoleBackground: "background",
	RoleCentral:    "central",
	RoleFrontier:   "frontier",
	RoleContour:    "contour",
	RoleFont:       "font",
	RolePointer:    "pointer",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "unknown"
	}
	return roleNames[r]
}

// ParseRole maps a role name back to its Role.
func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range roleNames {
		if name == s {
			return Role(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown color role %q", s)
}

// Palette holds one colour per role.
type Palette struct {
	Background Color
	Central    Color
	Frontier   Color
	Contour    Color
	Font       Color
	Pointer    Color
}

// DefaultPalette is a light grey scale with a red zero line and a
// translucent green tolerance band. The pointer shares the contour colour.
func DefaultPalette() Palette {
	contour := MustParseColor("#FF212121")
	return Palette{
		Background: MustParseColor("#FFE0E0E0"),
		Central:    MustParseColor("#FFD32F2F"),
		Frontier:   MustParseColor("#8081C784"),
		Contour:    contour,
		Font:       contour,
		Pointer:    contour,
	}
}

// Get returns the colour for r. Unknown roles return the zero colour.
func (p Palette) Get(r Role) Color {
	switch r {
	case RoleBackground:
		return p.Background
	case RoleCentral:
		return p.Central
	case RoleFrontier:
		return p.Frontier
	case RoleContour:
		return p.Contour
	case RoleFont:
		return p.Font
	case RolePointer:
		return p.Pointer
	}
	return 0
}

// With returns a copy of p with r set to c.
func (p Palette) With(r Role, c Color) Palette {
	switch r {
	case RoleBackground:
		p.Background = c
	case RoleCentral:
		p.Central = c
	case RoleFrontier:
		p.Frontier = c
	case RoleContour:
		p.Contour = c
	case RoleFont:
		p.Font = c
	case RolePointer:
		p.Pointer = c
	}
	return p
}
