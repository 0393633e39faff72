package api

import (
	"fmt"
	"log"
	"net/http"

	_ "github.com/Lassehoutenbos/PartManager/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Lassehoutenbos/PartManager/internal/api/handlers"
	"github.com/Lassehoutenbos/PartManager/internal/api/middleware"
	"github.com/Lassehoutenbos/PartManager/internal/config"
	"github.com/rs/cors"
)

func SetupRouter() http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	// Parts
	mainMux.HandleFunc("GET /api/parts", handlers.GetParts)
	mainMux.HandleFunc("GET /api/parts/{id}", handlers.GetPart)
	mainMux.HandleFunc("POST /api/parts", handlers.CreatePart)
	mainMux.HandleFunc("PUT /api/parts/{id}", handlers.UpdatePart)
	mainMux.HandleFunc("DELETE /api/parts/{id}", handlers.DeletePart)

	// Drawers
	mainMux.HandleFunc("GET /api/drawers", handlers.GetDrawers)
	mainMux.HandleFunc("GET /api/drawers/{id}", handlers.GetDrawer)
	mainMux.HandleFunc("POST /api/drawers", handlers.CreateDrawer)
	mainMux.HandleFunc("PUT /api/drawers/{id}", handlers.UpdateDrawer)
	mainMux.HandleFunc("DELETE /api/drawers/{id}", handlers.DeleteDrawer)

	// Categories
	mainMux.HandleFunc("GET /api/categories", handlers.GetCategories)
	mainMux.HandleFunc("GET /api/categories/{id}", handlers.GetCategory)
	mainMux.HandleFunc("POST /api/categories", handlers.CreateCategory)
	mainMux.HandleFunc("PUT /api/categories/{id}", handlers.UpdateCategory)
	mainMux.HandleFunc("DELETE /api/categories/{id}", handlers.DeleteCategory)

	// Attachments
	mainMux.HandleFunc("GET /api/attachments/part/{partId}", handlers.GetPartAttachments)
	mainMux.HandleFunc("POST /api/attachments/part/{partId}/upload", handlers.UploadAttachment)
	mainMux.HandleFunc("GET /api/attachments/download/{fileName}", handlers.DownloadAttachment)
	mainMux.HandleFunc("DELETE /api/attachments/{id}", handlers.DeleteAttachment)

	// NFC / QR tags
	mainMux.HandleFunc("GET /api/nfc/scan/{tagId}", handlers.ScanNfcTag)
	mainMux.HandleFunc("POST /api/nfc/write/drawer/{drawerId}", handlers.WriteDrawerNfcTag)
	mainMux.HandleFunc("POST /api/nfc/write/part/{partId}", handlers.WritePartNfcTag)
	mainMux.HandleFunc("GET /api/qr/scan/{code}", handlers.ScanQrCode)
	mainMux.HandleFunc("POST /api/qr/generate/drawer/{drawerId}", handlers.GenerateDrawerQrCode)
	mainMux.HandleFunc("POST /api/qr/generate/part/{partId}", handlers.GeneratePartQrCode)

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
