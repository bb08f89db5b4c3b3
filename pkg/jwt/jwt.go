package jwt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTLSeconds expiración usada cuando el TTL configurado no se puede interpretar (1 día).
const DefaultTTLSeconds int64 = 86400

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Subject lleva el id numérico del usuario como string.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"` // "admin" | "user"
}

// Options parámetros de firma y verificación compartidos por Generate y Parse.
type Options struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Generate genera un token JWT firmado (HS256) con sub, username y role.
func Generate(opts Options, userID int64, username, role string) (string, error) {
	if opts.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    opts.Issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(opts.TTL)),
		},
		Username: username,
		Role:     role,
	}
	if opts.Audience != "" {
		claims.Audience = jwt.ClaimStrings{opts.Audience}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(opts.Secret))
}

// Parse valida firma, expiración, issuer y audience y devuelve los claims.
func Parse(opts Options, tokenString string) (*Claims, error) {
	if opts.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(opts.Audience))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(opts.Secret), nil
	}, parserOpts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// UserID interpreta el subject como id numérico.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("jwt: subject inválido %q", c.Subject)
	}
	return id, nil
}

var ttlWithUnit = regexp.MustCompile(`^(\d+)\s*([smhdSMHD])$`)

// ParseTTL convierte el TTL configurado a segundos.
//
//	int / int64      → segundos tal cual
//	"30d" "12h" "15m" "10s" → valor × {86400, 3600, 60, 1}
//	"3600"           → segundos
//	nil              → ok=false (sin TTL configurado)
//	cualquier otro   → DefaultTTLSeconds
func ParseTTL(value any) (seconds int64, ok bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case *string:
		if v == nil {
			return 0, false
		}
		return parseTTLString(*v), true
	case string:
		return parseTTLString(v), true
	default:
		return DefaultTTLSeconds, true
	}
}

func parseTTLString(raw string) int64 {
	s := strings.TrimSpace(raw)
	if m := ttlWithUnit.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return DefaultTTLSeconds
		}
		switch strings.ToLower(m[2]) {
		case "s":
			return n
		case "m":
			return n * 60
		case "h":
			return n * 3600
		default:
			return n * 86400
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return DefaultTTLSeconds
}

// TTLDuration atajo para configurar Options.TTL desde el valor crudo de configuración.
func TTLDuration(value any) time.Duration {
	secs, ok := ParseTTL(value)
	if !ok {
		secs = DefaultTTLSeconds
	}
	return time.Duration(secs) * time.Second
}
