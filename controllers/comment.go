package controllers

import (
	"net/http"

	"blog-restful/auth"
	"blog-restful/models"
	"blog-restful/pagination"
	"blog-restful/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

type CommentController struct {
	commentService services.CommentService
}

// NewCommentController creates a CommentController instance
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// CommentAuthor is the shallow user projection on comment rows.
type CommentAuthor struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CommentResponse struct {
	ID        uint          `json:"id"`
	Content   string        `json:"content"`
	User      CommentAuthor `json:"user"`
	ArticleID uint          `json:"articleId"`
}

type PaginatedCommentsResponse struct {
	Data      []CommentResponse `json:"data"`
	Count     int64             `json:"count"`
	Page      int               `json:"page"`
	PageCount int               `json:"pageCount"`
}

func mapCommentResponse(comment *models.Comment) CommentResponse {
	if comment == nil {
		return CommentResponse{}
	}
	return CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		User:      CommentAuthor{ID: comment.User.ID, Name: comment.User.Name},
		ArticleID: comment.ArticleID,
	}
}

func mapCommentsPage(comments []models.Comment, total int64, params pagination.Params) PaginatedCommentsResponse {
	data := make([]CommentResponse, len(comments))
	for i := range comments {
		data[i] = mapCommentResponse(&comments[i])
	}
	return PaginatedCommentsResponse{
		Data:      data,
		Count:     total,
		Page:      params.Page,
		PageCount: pagination.PageCount(total, params.Limit),
	}
}

// RegisterRoutes sets up the comment routes for a go-restful WebService.
func (ctl *CommentController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/comments").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.POST("").Filter(auth.AuthFilter()).To(ctl.createHandler).
		Doc("Create a new comment on an article").
		Metadata(restfulspec.KeyOpenAPITags, []string{"comments"}).
		Reads(services.CreateCommentInput{}).
		Returns(http.StatusCreated, "Comment created successfully", CommentResponse{}).
		Returns(http.StatusBadRequest, "Invalid request body", ErrorResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", ErrorResponse{}).
		Returns(http.StatusNotFound, "User or article not found", ErrorResponse{}))

	ws.Route(ws.GET("").To(ctl.listHandler).
		Doc("List all comments with pagination").
		Param(ws.QueryParameter("page", "Page number (default 1)").DataType("integer").DefaultValue("1")).
		Param(ws.QueryParameter("limit", "Comments per page (default 10)").DataType("integer").DefaultValue("10")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"comments"}).
		Writes(PaginatedCommentsResponse{}).
		Returns(http.StatusOK, "Comments listed successfully", PaginatedCommentsResponse{}))

	ws.Route(ws.GET("/article/{article-id}").To(ctl.listByArticleHandler).
		Doc("List an article's comments with pagination").
		Param(ws.PathParameter("article-id", "Identifier of the article").DataType("integer")).
		Param(ws.QueryParameter("page", "Page number (default 1)").DataType("integer").DefaultValue("1")).
		Param(ws.QueryParameter("limit", "Comments per page (default 10)").DataType("integer").DefaultValue("10")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"comments"}).
		Writes(PaginatedCommentsResponse{}).
		Returns(http.StatusOK, "Comments listed successfully", PaginatedCommentsResponse{}))

	ws.Route(ws.GET("/{comment-id}").To(ctl.getByIDHandler).
		Doc("Get comment by ID").
		Param(ws.PathParameter("comment-id", "Identifier of the comment").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"comments"}).
		Writes(CommentResponse{}).
		Returns(http.StatusOK, "Comment found", CommentResponse{}).
		Returns(http.StatusNotFound, "Comment not found", ErrorResponse{}))

	ws.Route(ws.PATCH("/{comment-id}").Filter(auth.AuthFilter()).To(ctl.updateHandler).
		Doc("Update a comment (author only)").
		Param(ws.PathParameter("comment-id", "Identifier of the comment to update").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"comments"}).
		Reads(services.UpdateCommentInput{}).
		Writes(CommentResponse{}).
		Returns(http.StatusOK, "Comment updated successfully", CommentResponse{}).
		Returns(http.StatusBadRequest, "Invalid request body or comment ID", ErrorResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", ErrorResponse{}).
		Returns(http.StatusForbidden, "Forbidden", ErrorResponse{}).
		Returns(http.StatusNotFound, "Comment not found", ErrorResponse{}))

	ws.Route(ws.DELETE("/{comment-id}").Filter(auth.AuthFilter()).To(ctl.deleteHandler).
		Doc("Delete a comment (author only)").
		Param(ws.PathParameter("comment-id", "Identifier of the comment to delete").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"comments"}).
		Returns(http.StatusOK, "Comment deleted successfully", DeletedResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", ErrorResponse{}).
		Returns(http.StatusForbidden, "Forbidden", ErrorResponse{}).
		Returns(http.StatusNotFound, "Comment not found", ErrorResponse{}))
}

// createHandler (Handles POST /comments)
func (ctl *CommentController) createHandler(request *restful.Request, response *restful.Response) {
	actorID, ok := getRequestingUserID(request)
	if !ok {
		writeUnidentified(response)
		return
	}

	input := new(services.CreateCommentInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}
	input.UserID = actorID

	comment, err := ctl.commentService.Create(input)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusCreated, mapCommentResponse(comment), restful.MIME_JSON)
}

// listHandler (Handles GET /comments)
func (ctl *CommentController) listHandler(request *restful.Request, response *restful.Response) {
	params := pagination.FromRequest(request)

	comments, total, err := ctl.commentService.List(params.Page, params.Limit)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, mapCommentsPage(comments, total, params), restful.MIME_JSON)
}

// listByArticleHandler (Handles GET /comments/article/{article-id})
func (ctl *CommentController) listByArticleHandler(request *restful.Request, response *restful.Response) {
	articleID, err := parseIDParam(request, "article-id")
	if err != nil {
		writeBadID(response)
		return
	}

	params := pagination.FromRequest(request)

	comments, total, err := ctl.commentService.ListByArticle(articleID, params.Page, params.Limit)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, mapCommentsPage(comments, total, params), restful.MIME_JSON)
}

// getByIDHandler (Handles GET /comments/{comment-id})
func (ctl *CommentController) getByIDHandler(request *restful.Request, response *restful.Response) {
	commentID, err := parseIDParam(request, "comment-id")
	if err != nil {
		writeBadID(response)
		return
	}

	comment, err := ctl.commentService.GetByID(commentID)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, mapCommentResponse(comment), restful.MIME_JSON)
}

// updateHandler (Handles PATCH /comments/{comment-id})
func (ctl *CommentController) updateHandler(request *restful.Request, response *restful.Response) {
	commentID, err := parseIDParam(request, "comment-id")
	if err != nil {
		writeBadID(response)
		return
	}

	actorID, ok := getRequestingUserID(request)
	if !ok {
		writeUnidentified(response)
		return
	}

	input := new(services.UpdateCommentInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	comment, err := ctl.commentService.Update(commentID, actorID, input)
	if err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, mapCommentResponse(comment), restful.MIME_JSON)
}

// deleteHandler (Handles DELETE /comments/{comment-id})
func (ctl *CommentController) deleteHandler(request *restful.Request, response *restful.Response) {
	commentID, err := parseIDParam(request, "comment-id")
	if err != nil {
		writeBadID(response)
		return
	}

	actorID, ok := getRequestingUserID(request)
	if !ok {
		writeUnidentified(response)
		return
	}

	if err := ctl.commentService.Delete(commentID, actorID); err != nil {
		handleServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, DeletedResponse{Deleted: true}, restful.MIME_JSON)
}
