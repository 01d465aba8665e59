package portal

import (
	"net/http"

	_type "complaint-portal/internal/common/type"
	"complaint-portal/internal/pkg/middleware"
	"complaint-portal/internal/service/complaint/model"
	"complaint-portal/internal/service/view"

	"github.com/gin-gonic/gin"
)

const emptyListText = "لا توجد شكاوى"

func filtersFrom(c *gin.Context) model.FilterSet {
	filters := model.FilterSet{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}
	return filters
}

func (h *Handler) List(c *gin.Context) {
	page, err := h.complaints.List(forwarded(c), filtersFrom(c))
	if err != nil {
		h.failRead(c, err)
		return
	}
	if !wantsHTML(c) {
		h.data(c, page)
		return
	}
	if len(page.Results) == 0 {
		html(c, http.StatusOK, view.Empty(emptyListText, ""))
		return
	}
	html(c, http.StatusOK, view.ComplaintList(page.Results, h.locale))
}

func (h *Handler) Detail(c *gin.Context) {
	detail, err := h.complaints.Detail(forwarded(c), c.Param("id"))
	if err != nil {
		h.failRead(c, err)
		return
	}
	h.data(c, detail)
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.complaints.Statistics(forwarded(c))
	if err != nil {
		h.failRead(c, err)
		return
	}
	h.data(c, stats)
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.complaints.Categories(forwarded(c))
	if err != nil {
		h.failRead(c, err)
		return
	}
	if wantsHTML(c) {
		html(c, http.StatusOK, view.CategoryOptions(categories))
		return
	}
	h.data(c, categories)
}

// Export streams binary artefacts and relays JSON references as data.
func (h *Handler) Export(c *gin.Context) {
	req, err := bind[model.ExportRequest](c)
	if err != nil {
		h.fail(c, err)
		return
	}
	result, err := h.complaints.Export(forwarded(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	if len(result.Content) > 0 {
		c.Header("Content-Disposition", `attachment; filename="complaints.`+exportExtension(result.Format)+`"`)
		c.Data(http.StatusOK, result.ContentType, result.Content)
		return
	}
	h.data(c, result)
}

func exportExtension(format string) string {
	switch format {
	case "excel":
		return "xlsx"
	case "pdf":
		return "pdf"
	}
	return "zip"
}

func (h *Handler) data(c *gin.Context, data any) {
	middleware.Send(c)(&_type.Response{Code: http.StatusOK, Data: data})
}
