// Package validate contiene la validación local de documentos de
// identidad indios y teléfonos móviles. Es la misma validación de
// formulario que corre antes de reenviar datos al API remoto; la
// verificación real contra el proveedor KYC es responsabilidad del API.
package validate

import (
	"regexp"
	"strings"
)

// Tablas del checksum Verhoeff (grupo dihedral D5), el algoritmo oficial
// del dígito verificador de Aadhaar.
var (
	verhoeffD = [10][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
		{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
		{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
		{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
		{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
		{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
		{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
		{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}
	verhoeffP = [8][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
		{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
		{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
		{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
		{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
		{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
		{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
	}
)

var (
	panRe    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	ifscRe   = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
)

// verhoeffValid informa si la cadena de dígitos (incluido el dígito
// verificador al final) pasa el checksum Verhoeff.
func verhoeffValid(digits string) bool {
	c := 0
	n := len(digits)
	for i := 0; i < n; i++ {
		d := int(digits[n-1-i] - '0')
		c = verhoeffD[c][verhoeffP[i%8][d]]
	}
	return c == 0
}

// Aadhaar valida un número Aadhaar: 12 dígitos, no empieza en 0 ni 1,
// checksum Verhoeff correcto. Acepta espacios de agrupación (XXXX XXXX XXXX).
func Aadhaar(s string) bool {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if len(s) != 12 || !digitsRe.MatchString(s) {
		return false
	}
	if s[0] == '0' || s[0] == '1' {
		return false
	}
	return verhoeffValid(s)
}

// PAN valida la estructura de un PAN (AAAAA9999A). El cuarto carácter
// codifica el tipo de titular; se exige uno de los tipos emitidos.
func PAN(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !panRe.MatchString(s) {
		return false
	}
	switch s[3] {
	case 'P', 'C', 'H', 'A', 'B', 'G', 'J', 'L', 'F', 'T':
		return true
	}
	return false
}

// IFSC valida un código IFSC bancario (AAAA0XXXXXX).
func IFSC(s string) bool {
	return ifscRe.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// MobileIN normaliza un móvil indio a formato E.164 (+91XXXXXXXXXX).
// Acepta separadores comunes, prefijo 0, 91 o +91. Devuelve ok=false si
// el número no es un móvil indio válido (10 dígitos, empieza en 6-9).
func MobileIN(s string) (normalized string, ok bool) {
	var digits strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+':
			// separadores permitidos
		default:
			return "", false
		}
	}
	d := digits.String()
	switch {
	case len(d) == 12 && strings.HasPrefix(d, "91"):
		d = d[2:]
	case len(d) == 11 && strings.HasPrefix(d, "0"):
		d = d[1:]
	}
	if len(d) != 10 || d[0] < '6' || d[0] > '9' {
		return "", false
	}
	return "+91" + d, true
}
