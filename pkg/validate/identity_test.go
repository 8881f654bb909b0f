package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nivasahq/nivasa-portal/pkg/validate"
)

// ──────────────────────────────────────────────────────────────────────────────
// Aadhaar
// ──────────────────────────────────────────────────────────────────────────────

func TestAadhaar_NumeroValido(t *testing.T) {
	assert.True(t, validate.Aadhaar("234567890124"))
}

func TestAadhaar_AceptaEspaciosDeAgrupacion(t *testing.T) {
	assert.True(t, validate.Aadhaar("2345 6789 0124"))
	assert.True(t, validate.Aadhaar("  234567890124  "))
}

func TestAadhaar_ChecksumIncorrecto(t *testing.T) {
	// Mismo número con el dígito verificador alterado.
	assert.False(t, validate.Aadhaar("234567890125"))
	// Transposición de dígitos: Verhoeff la detecta.
	assert.False(t, validate.Aadhaar("324567890124"))
}

func TestAadhaar_FormatosInvalidos(t *testing.T) {
	cases := map[string]string{
		"muy corto":           "23456789012",
		"muy largo":           "2345678901244",
		"con letras":          "23456789012A",
		"empieza en cero":     "034567890124",
		"empieza en uno":      "134567890124",
		"vacío":               "",
		"guiones no es grupo": "2345-6789-0124",
	}
	for name, in := range cases {
		assert.False(t, validate.Aadhaar(in), name)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// PAN
// ──────────────────────────────────────────────────────────────────────────────

func TestPAN_Valido(t *testing.T) {
	assert.True(t, validate.PAN("ABCPE1234F"))
	assert.True(t, validate.PAN("abcpe1234f"), "se normaliza a mayúsculas")
	assert.True(t, validate.PAN(" AAACR5055K "))
}

func TestPAN_Invalido(t *testing.T) {
	cases := map[string]string{
		"muy corto":                 "ABCPE1234",
		"dígito donde va letra":     "AB1PE1234F",
		"letra donde va dígito":     "ABCPE12X4F",
		"tipo de titular no emitido": "ABCZE1234F",
		"vacío":                     "",
	}
	for name, in := range cases {
		assert.False(t, validate.PAN(in), name)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// IFSC
// ──────────────────────────────────────────────────────────────────────────────

func TestIFSC(t *testing.T) {
	assert.True(t, validate.IFSC("HDFC0001234"))
	assert.True(t, validate.IFSC("sbin0005943"), "se normaliza a mayúsculas")
	assert.False(t, validate.IFSC("HDFC1001234"), "el quinto carácter debe ser cero")
	assert.False(t, validate.IFSC("HDF00012345"))
	assert.False(t, validate.IFSC(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// MobileIN
// ──────────────────────────────────────────────────────────────────────────────

func TestMobileIN_Normalizacion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9876543210", "+919876543210"},
		{"09876543210", "+919876543210"},
		{"919876543210", "+919876543210"},
		{"+91 98765 43210", "+919876543210"},
		{"98765-43210", "+919876543210"},
		{"(987) 654-3210", "+919876543210"},
	}
	for _, c := range cases {
		got, ok := validate.MobileIN(c.in)
		assert.True(t, ok, "entrada %q", c.in)
		assert.Equal(t, c.want, got, "entrada %q", c.in)
	}
}

func TestMobileIN_Invalidos(t *testing.T) {
	cases := map[string]string{
		"empieza en 5":        "5876543210",
		"muy corto":           "987654321",
		"muy largo sin prefijo": "98765432101",
		"letras":              "98765abcde",
		"vacío":               "",
	}
	for name, in := range cases {
		_, ok := validate.MobileIN(in)
		assert.False(t, ok, name)
	}
}
