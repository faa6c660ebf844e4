package controllers

import (
	"net/http"
	"time"

	"tastebook/auth"
	"tastebook/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// AuthController handles signup, login, logout and session introspection
type AuthController struct {
	authService services.AuthService
	sessionTTL  time.Duration
}

// NewAuthController creates an AuthController instance
func NewAuthController(authService services.AuthService, sessionTTL time.Duration) *AuthController {
	return &AuthController{authService: authService, sessionTTL: sessionTTL}
}

// CSRFTokenResponse is the body returned by GET /csrf_token
type CSRFTokenResponse struct {
	Token string `json:"token"`
}

// IdentityResponse is the body returned by GET /auth
type IdentityResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// MessageResponse is the generic confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries the field->message map for a 400
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// RegisterRoutes sets up the authentication routes on a go-restful WebService.
func (ctl *AuthController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.GET("/csrf_token").To(ctl.csrfTokenHandler).
		Doc("Obtain an anti-forgery token for state-mutating requests").
		Metadata(restfulspec.KeyOpenAPITags, []string{"auth"}).
		Writes(CSRFTokenResponse{}).
		Returns(http.StatusOK, "Token issued", CSRFTokenResponse{}))

	ws.Route(ws.POST("/signup").To(ctl.signupHandler).
		Doc("Register a new user account").
		Metadata(restfulspec.KeyOpenAPITags, []string{"auth"}).
		Reads(services.CredentialsInput{}).
		Returns(http.StatusCreated, "User created successfully", MessageResponse{}).
		Returns(http.StatusBadRequest, "Invalid input", ValidationErrorResponse{}))

	ws.Route(ws.POST("/auth").To(ctl.loginHandler).
		Doc("Log in and establish an authenticated session").
		Metadata(restfulspec.KeyOpenAPITags, []string{"auth"}).
		Reads(services.CredentialsInput{}).
		Returns(http.StatusOK, "Logged in successfully", MessageResponse{}).
		Returns(http.StatusBadRequest, "Invalid input", ValidationErrorResponse{}).
		Returns(http.StatusUnauthorized, "Invalid credentials", MessageResponse{}))

	ws.Route(ws.GET("/auth").Filter(auth.SessionFilter()).To(ctl.whoAmIHandler).
		Doc("Return the identity behind the current session").
		Metadata(restfulspec.KeyOpenAPITags, []string{"auth"}).
		Writes(IdentityResponse{}).
		Returns(http.StatusOK, "Current identity", IdentityResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", MessageResponse{}))

	ws.Route(ws.POST("/logout").Filter(auth.SessionFilter()).To(ctl.logoutHandler).
		Doc("Clear the authenticated session").
		Metadata(restfulspec.KeyOpenAPITags, []string{"auth"}).
		Returns(http.StatusOK, "Logged out successfully", MessageResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", MessageResponse{}))
}

func (ctl *AuthController) csrfTokenHandler(request *restful.Request, response *restful.Response) {
	token, err := auth.NewCSRFToken()
	if err != nil {
		_ = response.WriteHeaderAndJson(http.StatusInternalServerError, MessageResponse{Message: "Could not generate token"}, restful.MIME_JSON)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, CSRFTokenResponse{Token: token}, restful.MIME_JSON)
}

func (ctl *AuthController) signupHandler(request *restful.Request, response *restful.Response) {
	input := new(services.CredentialsInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, MessageResponse{Message: "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	if _, err := ctl.authService.Signup(input); err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			_ = response.WriteHeaderAndJson(http.StatusBadRequest, ValidationErrorResponse{Message: "Invalid input!", Errors: ve.Errors}, restful.MIME_JSON)
			return
		}
		_ = response.WriteHeaderAndJson(http.StatusInternalServerError, MessageResponse{Message: "Failed to create user"}, restful.MIME_JSON)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusCreated, MessageResponse{Message: "User created successfully!"}, restful.MIME_JSON)
}

func (ctl *AuthController) loginHandler(request *restful.Request, response *restful.Response) {
	input := new(services.CredentialsInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, MessageResponse{Message: "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	user, err := ctl.authService.Login(input)
	if err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			_ = response.WriteHeaderAndJson(http.StatusBadRequest, ValidationErrorResponse{Message: "Invalid input!", Errors: ve.Errors}, restful.MIME_JSON)
			return
		}
		// Avoid revealing whether the email exists
		_ = response.WriteHeaderAndJson(http.StatusUnauthorized, MessageResponse{Message: "Invalid credentials!"}, restful.MIME_JSON)
		return
	}

	token, err := auth.NewSessionToken(user, ctl.sessionTTL)
	if err != nil {
		_ = response.WriteHeaderAndJson(http.StatusInternalServerError, MessageResponse{Message: "Could not establish session"}, restful.MIME_JSON)
		return
	}

	http.SetCookie(response, auth.NewSessionCookie(token, ctl.sessionTTL))
	_ = response.WriteHeaderAndJson(http.StatusOK, MessageResponse{Message: "Logged in successfully!"}, restful.MIME_JSON)
}

func (ctl *AuthController) whoAmIHandler(request *restful.Request, response *restful.Response) {
	userID, ok := auth.SessionUserID(request)
	if !ok {
		_ = response.WriteHeaderAndJson(http.StatusUnauthorized, MessageResponse{Message: "Authentication required"}, restful.MIME_JSON)
		return
	}

	user, err := ctl.authService.GetUser(userID)
	if err != nil {
		// The session outlived its user; treat it as no session at all.
		_ = response.WriteHeaderAndJson(http.StatusUnauthorized, MessageResponse{Message: "Authentication required"}, restful.MIME_JSON)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, IdentityResponse{ID: user.ID, Email: user.Email}, restful.MIME_JSON)
}

func (ctl *AuthController) logoutHandler(request *restful.Request, response *restful.Response) {
	http.SetCookie(response, auth.ExpiredSessionCookie())
	_ = response.WriteHeaderAndJson(http.StatusOK, MessageResponse{Message: "Logged out successfully!"}, restful.MIME_JSON)
}
