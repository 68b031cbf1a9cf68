package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"lifeseeker-api/common"
	"lifeseeker-api/handler"
	"lifeseeker-api/service"
)

func NewRouter(
	codec *service.TokenCodec,
	authService *service.AuthService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	momentHandler *handler.MomentHandler,
	annotationHandler *handler.AnnotationHandler,
	uploadHandler *handler.UploadHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Public routes
	mux.Handle("POST /auth", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /users", handler.ErrorHandlingMiddleware(userHandler.Register))
	mux.Handle("GET /users", handler.ErrorHandlingMiddleware(userHandler.ListUsers))
	mux.Handle("GET /users/{username}", handler.ErrorHandlingMiddleware(userHandler.GetUser))

	// Protected routes pass through the token verification gate.
	authMiddleware := handler.AuthMiddleware(codec, authService)
	protected := func(h func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return authMiddleware(handler.ErrorHandlingMiddleware(h))
	}

	mux.Handle("POST /api/users/dates", protected(userHandler.AddDates))
	mux.Handle("GET /api/users/dates", protected(userHandler.GetDates))

	mux.Handle("POST /api/moments", protected(momentHandler.InsertMoments))
	mux.Handle("POST /api/moments/append", protected(momentHandler.AppendMoments))
	mux.Handle("GET /api/moments", protected(momentHandler.GetMomentsByDate))
	mux.Handle("POST /api/moments/detail", protected(momentHandler.InsertMomentDetail))
	mux.Handle("PUT /api/moments/detail", protected(momentHandler.UpdateMomentDetail))
	mux.Handle("GET /api/moments/detail", protected(momentHandler.GetMomentDetail))

	mux.Handle("POST /api/annotations/defaults", protected(annotationHandler.SetDefaults))
	mux.Handle("GET /api/annotations", protected(annotationHandler.GetAllLists))
	mux.Handle("POST /api/annotations/values", protected(annotationHandler.AddValue))
	mux.Handle("GET /api/annotations/{listType}", protected(annotationHandler.GetList))

	mux.Handle("POST /api/upload", protected(uploadHandler.Upload))

	return mux
}
