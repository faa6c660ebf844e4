package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tastebook/models"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/golang-jwt/jwt/v4"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "session"

	// CSRFHeaderName is the request header carrying the anti-forgery token
	// on state-mutating requests.
	CSRFHeaderName = "X-CSRF-Token"

	csrfSubject    = "csrf"
	sessionSubject = "user-auth"
)

// mySigningKey should be a strong, randomly generated secret key,
// and it should be stored securely (e.g., in environment variables,
// a key management service, etc.), NOT hardcoded in your source code.
var mySigningKey = []byte("mySigningKey")

// SetSigningKey allows setting the key from outside the package.
func SetSigningKey(key []byte) {
	if len(key) > 0 {
		mySigningKey = key
	}
}

// SessionClaims represents the identity carried by a session cookie.
type SessionClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// NewSessionToken creates a signed session token for the given user.
func NewSessionToken(user *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "tastebook",
			Subject:   sessionSubject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(mySigningKey)
}

// ParseSessionToken validates a session token and returns its claims.
func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return mySigningKey, nil
	})

	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok {
			if ve.Errors&jwt.ValidationErrorMalformed != 0 {
				return nil, errors.New("malformed token")
			} else if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
				return nil, errors.New("session is either expired or not active yet")
			} else if ve.Errors&jwt.ValidationErrorSignatureInvalid != 0 {
				return nil, errors.New("invalid token signature")
			}
		}
		return nil, fmt.Errorf("couldn't handle this token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Subject != sessionSubject {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// NewSessionCookie wraps a session token in an HttpOnly cookie.
func NewSessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie returns a cookie that clears the session on the client.
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// NewCSRFToken issues a short-lived signed anti-forgery token.
func NewCSRFToken() (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    "tastebook",
		Subject:   csrfSubject,
		ID:        hex.EncodeToString(nonce),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(mySigningKey)
}

// ValidateCSRFToken checks the signature and expiry of an anti-forgery token.
func ValidateCSRFToken(tokenString string) error {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return mySigningKey, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid || claims.Subject != csrfSubject {
		return errors.New("invalid token")
	}
	return nil
}

// SessionFilter creates a go-restful FilterFunction that requires an
// authenticated session cookie and loads the identity into the request
// attributes.
func SessionFilter() restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		cookie, err := req.Request.Cookie(SessionCookieName)
		if err != nil {
			_ = resp.WriteHeaderAndJson(http.StatusUnauthorized, map[string]string{"message": "Authentication required"}, restful.MIME_JSON)
			return
		}

		claims, err := ParseSessionToken(cookie.Value)
		if err != nil {
			_ = resp.WriteHeaderAndJson(http.StatusUnauthorized, map[string]string{"message": err.Error()}, restful.MIME_JSON)
			return
		}

		// Store user information in request attributes for use by subsequent processing functions
		req.SetAttribute("user_id", claims.UserID)
		req.SetAttribute("email", claims.Email)

		chain.ProcessFilter(req, resp)
	}
}

// CSRFFilter creates a container-level FilterFunction rejecting any
// state-mutating request that does not carry a valid anti-forgery token.
// The rejection happens before business logic runs.
func CSRFFilter() restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		switch req.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete:
			token := req.Request.Header.Get(CSRFHeaderName)
			if token == "" {
				_ = resp.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "The CSRF token is missing."}, restful.MIME_JSON)
				return
			}
			if err := ValidateCSRFToken(token); err != nil {
				_ = resp.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "The CSRF token is invalid."}, restful.MIME_JSON)
				return
			}
		}

		chain.ProcessFilter(req, resp)
	}
}

// SessionUserID extracts the authenticated identity placed in the request
// attributes by SessionFilter.
func SessionUserID(req *restful.Request) (uint, bool) {
	userID, ok := req.Attribute("user_id").(uint)
	return userID, ok
}
