package controllers

import (
	"net/http"
	"time"

	"blog-restful/auth"
	"blog-restful/models"
	"blog-restful/pagination"
	"blog-restful/services"
	"blog-restful/storage"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// maxMultipartMemory bounds the in-memory part of multipart parsing.
const maxMultipartMemory = 32 << 20

type ArticleController struct {
	articleService services.ArticleService
	store          *storage.Disk
}

// NewArticleController creates an ArticleController instance
func NewArticleController(articleService services.ArticleService, store *storage.Disk) *ArticleController {
	return &ArticleController{articleService: articleService, store: store}
}

// ArticleResponse expands the author one level; never deeper.
type ArticleResponse struct {
	ID           uint         `json:"id"`
	Title        string       `json:"title"`
	Content      string       `json:"content"`
	PreviewImage string       `json:"previewImage,omitempty"`
	Author       UserResponse `json:"author"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type PaginatedArticlesResponse struct {
	Data      []ArticleResponse `json:"data"`
	Count     int64             `json:"count"`
	Page      int               `json:"page"`
	PageCount int               `json:"pageCount"`
}

func mapArticleResponse(article *models.Article) ArticleResponse {
	if article == nil {
		return ArticleResponse{}
	}
	return ArticleResponse{
		ID:           article.ID,
		Title:        article.Title,
		Content:      article.Content,
		PreviewImage: article.PreviewImage,
		Author:       mapUserResponse(&article.Author),
		CreatedAt:    article.CreatedAt,
		UpdatedAt:    article.UpdatedAt,
	}
}

// RegisterRoutes sets up the article routes for a go-restful WebService.
func (ctl *ArticleController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/articles").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.POST("").Filter(auth.AuthFilter()).To(ctl.createHandler).
		Doc("Create a new article, optionally with a preview image").
		Consumes("multipart/form-data").
		Param(ws.FormParameter("title", "Title of the article").DataType("string")).
		Param(ws.FormParameter("content", "Content of the article").DataType("string")).
		Param(ws.FormParameter("previewImage", "Optional preview image file").DataType("file")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"articles"}).
		Returns(http.StatusCreated, "Article created successfully", ArticleResponse{}).
		Returns(http.StatusBadRequest, "Invalid form data", ErrorResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", ErrorResponse{}))

	ws.Route(ws.GET("").To(ctl.listHandler).
		Doc("List articles with pagination, or search by title and content").
		Param(ws.QueryParameter("query", "Keyword matched as a substring of title or content").DataType("string")).
		Param(ws.QueryParameter("page", "Page number (default 1)").DataType("integer").DefaultValue("1")).
		Param(ws.QueryParameter("limit", "Articles per page (default 10)").DataType("integer").DefaultValue("10")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"articles"}).
		Writes(PaginatedArticlesResponse{}).
		Returns(http.StatusOK, "Articles listed successfully", PaginatedArticlesResponse{}))

	ws.Route(ws.GET("/{article-id}").To(ctl.getByIDHandler).
		Doc("Get article by ID").
		Param(ws.PathParameter("article-id", "Identifier of the article").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"articles"}).
		Writes(ArticleResponse{}).
		Returns(http.StatusOK, "Article found", ArticleResponse{}).
		Returns(http.StatusNotFound, "Article not found", ErrorResponse{}))

	ws.Route(ws.PATCH("/{article-id}").Filter(auth.AuthFilter()).To(ctl.updateHandler).
		Doc("Update an article (author only)").
		Param(ws.PathParameter("article-id", "Identifier of the article to update").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"articles"}).
		Reads(services.UpdateArticleInput{}).
		Writes(ArticleResponse{}).
		Returns(http.StatusOK, "Article updated successfully", ArticleResponse{}).
		Returns(http.StatusBadRequest, "Invalid request body or article ID", ErrorResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", ErrorResponse{}).
		Returns(http.StatusForbidden, "Forbidden", ErrorResponse{}).
		Returns(http.StatusNotFound, "Article not found", ErrorResponse{}))

	ws.Route(ws.DELETE("/{article-id}").Filter(auth.AuthFilter()).To(ctl.deleteHandler).
		Doc("Delete an article (author only)").
		Param(ws.PathParameter("article-id", "Identifier of the article to delete").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"articles"}).
		Returns(http.StatusOK, "Article deleted successfully", DeletedResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", ErrorResponse{}).
		Returns(http.StatusForbidden, "Forbidden", ErrorResponse{}).
		Returns(http.StatusNotFound, "Article not found", ErrorResponse{}))
}

// createHandler (Handles POST /articles, multipart)
func (ctl *ArticleController) createHandler(request *restful.Request, response *restful.Response) {
	actorID, ok := getRequestingUserID(request)
	if !ok {
		writeUnidentified(response)
		return
	}

	r := request.Request
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, ErrorResponse{Message: "Invalid multipart form: " + err.Error()}, restful.MIME_JSON)
		return
	}

	previewURL := ""
	file, header, err := r.FormFile("previewImage")
	if err == nil {
		defer file.Close()
		filename, err := ctl.store.Save(file, header.Filename)
		if err != nil {
			_ = response.WriteHeaderAndJson(http.StatusInternalServerError, ErrorResponse{Message: "Failed to store preview image"}, restful.MIME_JSON)
			return
		}
		previewURL = storage.PublicPath(filename)
	} else if err != http.ErrMissingFile {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, ErrorResponse{Message: "Invalid preview image: " + err.Error()}, restful.MIME_JSON)
		return
	}

	article, err := ctl.articleService.Create(&services.CreateArticleInput{
		Title:        r.FormValue("title"),
		Content:      r.FormValue("content"),
		PreviewImage: previewURL,
		AuthorID:     actorID,
	})
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusCreated, mapArticleResponse(article), restful.MIME_JSON)
}

// listHandler (Handles GET /articles)
func (ctl *ArticleController) listHandler(request *restful.Request, response *restful.Response) {
	params := pagination.FromRequest(request)

	articles, total, err := ctl.articleService.List(params)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	data := make([]ArticleResponse, len(articles))
	for i := range articles {
		data[i] = mapArticleResponse(&articles[i])
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, PaginatedArticlesResponse{
		Data:      data,
		Count:     total,
		Page:      params.Page,
		PageCount: pagination.PageCount(total, params.Limit),
	}, restful.MIME_JSON)
}

// getByIDHandler (Handles GET /articles/{article-id})
func (ctl *ArticleController) getByIDHandler(request *restful.Request, response *restful.Response) {
	articleID, err := parseIDParam(request, "article-id")
	if err != nil {
		writeBadID(response)
		return
	}

	article, err := ctl.articleService.GetByID(articleID)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, mapArticleResponse(article), restful.MIME_JSON)
}

// updateHandler (Handles PATCH /articles/{article-id})
func (ctl *ArticleController) updateHandler(request *restful.Request, response *restful.Response) {
	articleID, err := parseIDParam(request, "article-id")
	if err != nil {
		writeBadID(response)
		return
	}

	actorID, ok := getRequestingUserID(request)
	if !ok {
		writeUnidentified(response)
		return
	}

	input := new(services.UpdateArticleInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	article, err := ctl.articleService.Update(articleID, actorID, input)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, mapArticleResponse(article), restful.MIME_JSON)
}

// deleteHandler (Handles DELETE /articles/{article-id})
func (ctl *ArticleController) deleteHandler(request *restful.Request, response *restful.Response) {
	articleID, err := parseIDParam(request, "article-id")
	if err != nil {
		writeBadID(response)
		return
	}

	actorID, ok := getRequestingUserID(request)
	if !ok {
		writeUnidentified(response)
		return
	}

	if err := ctl.articleService.Delete(articleID, actorID); err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, DeletedResponse{Deleted: true}, restful.MIME_JSON)
}
