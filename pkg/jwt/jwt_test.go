package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/expedicao-api/pkg/jwt"
)

var testOpts = pkgjwt.Options{
	Secret:   "test-secret-key-for-unit-tests",
	Issuer:   "expedicao-test",
	Audience: "expedicao-web-test",
	TTL:      time.Hour,
}

func TestParseTTL(t *testing.T) {
	str := "15m"
	cases := []struct {
		name   string
		in     any
		want   int64
		wantOK bool
	}{
		{"días", "30d", 2592000, true},
		{"horas", "12h", 43200, true},
		{"minutos", "15m", 900, true},
		{"segundos", "10s", 10, true},
		{"mayúscula", "2H", 7200, true},
		{"espacio interno", "5 m", 300, true},
		{"número en string", "3600", 3600, true},
		{"entero", 7200, 7200, true},
		{"puntero a string", &str, 900, true},
		{"nil", nil, 0, false},
		{"basura", "abc", 86400, true},
		{"unidad desconocida", "10w", 86400, true},
		{"vacío", "", 86400, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := pkgjwt.ParseTTL(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTTLDuration_NilUsaUnDia(t *testing.T) {
	assert.Equal(t, 24*time.Hour, pkgjwt.TTLDuration(nil))
	assert.Equal(t, 12*time.Hour, pkgjwt.TTLDuration("12h"))
}

func TestGenerateAndParse_SubjectEsElID(t *testing.T) {
	tok, err := pkgjwt.Generate(testOpts, 42, "maria.souza", "admin")
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testOpts, tok)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "maria.souza", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestParse_TokenExpirado(t *testing.T) {
	opts := testOpts
	opts.TTL = -time.Minute
	tok, err := pkgjwt.Generate(opts, 1, "a.b", "user")
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testOpts, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testOpts, 1, "a.b", "user")
	require.NoError(t, err)

	other := testOpts
	other.Secret = "otro-secret-completamente-distinto"
	_, err = pkgjwt.Parse(other, tok)
	assert.Error(t, err)
}

func TestParse_AudienceEIssuerIncorrectos(t *testing.T) {
	tok, err := pkgjwt.Generate(testOpts, 1, "a.b", "user")
	require.NoError(t, err)

	wrongAud := testOpts
	wrongAud.Audience = "otra-audiencia"
	_, err = pkgjwt.Parse(wrongAud, tok)
	assert.Error(t, err)

	wrongIss := testOpts
	wrongIss.Issuer = "otro-emisor"
	_, err = pkgjwt.Parse(wrongIss, tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, err := pkgjwt.Generate(pkgjwt.Options{}, 1, "a.b", "user")
	assert.Error(t, err)
}
