package controllers

import (
	"net/http"

	"blog-restful/auth"
	"blog-restful/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates an AuthController instance
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// LoginRequest defines the structure of the login request
type LoginRequest struct {
	Email    string `json:"email" description:"Email for login"`
	Password string `json:"password" description:"Password for login"`
}

// TokenResponse carries a freshly issued session token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// RegisterRoutes sets up the auth routes for a go-restful WebService.
func (ctl *AuthController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/auth").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.POST("/login").To(ctl.loginHandler).
		Doc("Authenticate with email and password").
		Metadata(restfulspec.KeyOpenAPITags, []string{"auth"}).
		Reads(LoginRequest{}).
		Returns(http.StatusOK, "Authenticated", TokenResponse{}).
		Returns(http.StatusBadRequest, "Invalid request body", ErrorResponse{}).
		Returns(http.StatusUnauthorized, "Invalid credentials", ErrorResponse{}))

	ws.Route(ws.POST("/refresh").Filter(auth.AuthFilter()).To(ctl.refreshHandler).
		Doc("Issue a new token for the current identity").
		Metadata(restfulspec.KeyOpenAPITags, []string{"auth"}).
		Returns(http.StatusOK, "Token refreshed", TokenResponse{}).
		Returns(http.StatusUnauthorized, "Invalid or expired token", ErrorResponse{}))
}

// loginHandler (Handles POST /auth/login)
func (ctl *AuthController) loginHandler(request *restful.Request, response *restful.Response) {
	creds := new(LoginRequest)
	if err := request.ReadEntity(creds); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	if creds.Email == "" || creds.Password == "" {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, ErrorResponse{Message: "Email and password are required"}, restful.MIME_JSON)
		return
	}

	token, err := ctl.authService.Login(creds.Email, creds.Password)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, TokenResponse{AccessToken: token}, restful.MIME_JSON)
}

// refreshHandler (Handles POST /auth/refresh)
func (ctl *AuthController) refreshHandler(request *restful.Request, response *restful.Response) {
	userID, ok := getRequestingUserID(request)
	if !ok {
		writeUnidentified(response)
		return
	}
	email, ok := getRequestingEmail(request)
	if !ok {
		writeUnidentified(response)
		return
	}

	token, err := ctl.authService.Refresh(userID, email)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, TokenResponse{AccessToken: token}, restful.MIME_JSON)
}
