package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivasahq/nivasa-portal/pkg/jwt"
)

const testSecret = "secreto-de-test-suficientemente-largo"

func TestGenerateYParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate(testSecret, "sesion-123", "nivasa-portal", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "sesion-123", sessionID)
}

func TestGenerate_EntradasVacias(t *testing.T) {
	_, err := jwt.Generate("", "sesion-123", "nivasa-portal", 60)
	assert.Error(t, err, "sin secret no se firma nada")

	_, err = jwt.Generate(testSecret, "", "nivasa-portal", 60)
	assert.Error(t, err, "sin sessionID el token no referencia nada")
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(testSecret, "sesion-123", "nivasa-portal", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "sesion-123", "nivasa-portal", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParse_Basura(t *testing.T) {
	_, err := jwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)

	_, err = jwt.Parse(testSecret, "")
	assert.Error(t, err)
}
