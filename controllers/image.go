package controllers

import (
	"fmt"
	"net/http"

	"blog-restful/auth"
	"blog-restful/storage"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// maxUploadFiles caps a single bulk upload request.
const maxUploadFiles = 10

type ImageController struct {
	store *storage.Disk
}

// NewImageController creates an ImageController instance
func NewImageController(store *storage.Disk) *ImageController {
	return &ImageController{store: store}
}

// UploadResponse lists the public URLs of the stored files.
type UploadResponse struct {
	ImageURLs []string `json:"imageUrls"`
}

// RegisterRoutes sets up the image upload route for a go-restful WebService.
func (ctl *ImageController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/images").Produces(restful.MIME_JSON)

	ws.Route(ws.POST("/upload").Filter(auth.AuthFilter()).To(ctl.uploadHandler).
		Doc("Upload up to 10 image files").
		Consumes("multipart/form-data").
		Param(ws.FormParameter("files", "Image files to upload").DataType("file")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"images"}).
		Returns(http.StatusCreated, "Files stored", UploadResponse{}).
		Returns(http.StatusBadRequest, "Invalid form data", ErrorResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", ErrorResponse{}))
}

// uploadHandler (Handles POST /images/upload)
func (ctl *ImageController) uploadHandler(request *restful.Request, response *restful.Response) {
	r := request.Request
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, ErrorResponse{Message: "Invalid multipart form: " + err.Error()}, restful.MIME_JSON)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, ErrorResponse{Message: "At least one file is required"}, restful.MIME_JSON)
		return
	}
	if len(files) > maxUploadFiles {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("At most %d files per upload", maxUploadFiles)}, restful.MIME_JSON)
		return
	}

	imageURLs := make([]string, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			_ = response.WriteHeaderAndJson(http.StatusBadRequest, ErrorResponse{Message: "Unreadable file part: " + err.Error()}, restful.MIME_JSON)
			return
		}

		filename, err := ctl.store.Save(file, header.Filename)
		file.Close()
		if err != nil {
			_ = response.WriteHeaderAndJson(http.StatusInternalServerError, ErrorResponse{Message: "Failed to store file"}, restful.MIME_JSON)
			return
		}
		imageURLs = append(imageURLs, storage.PublicPath(filename))
	}

	_ = response.WriteHeaderAndJson(http.StatusCreated, UploadResponse{ImageURLs: imageURLs}, restful.MIME_JSON)
}
