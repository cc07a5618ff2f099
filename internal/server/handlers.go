package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fuego-be/internal/checkout"
	"fuego-be/internal/filter"
	"fuego-be/internal/logger"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getCatalog applies the query-string filter spec and sort mode to the
// full dataset.
func (s *Server) getCatalog(c *gin.Context) {
	spec := filter.Decode(c.Request.URL.Query())
	mode := filter.ParseSortMode(c.Query("sort"))

	items := filter.Apply(s.catalog.All(), spec, mode)

	c.JSON(http.StatusOK, gin.H{
		"items":          items,
		"total":          len(items),
		"sort":           mode,
		"active_filters": spec.Count(),
	})
}

func (s *Server) getFacets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"houses":     s.catalog.Houses(),
		"categories": s.catalog.Categories(),
		"lines":      s.catalog.Lines(),
		"genders":    []string{"all", "women", "men"},
	})
}

func (s *Server) getIconic(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": s.catalog.Iconic()})
}

func (s *Server) getProduct(c *gin.Context) {
	code := c.Param("code")

	p, ok := s.catalog.ByCode(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": p,
		"related": s.catalog.Related(code),
	})
}

func (s *Server) getSearch(c *gin.Context) {
	q := c.Query("q")
	results := s.search.Search(q)

	c.JSON(http.StatusOK, gin.H{
		"query":   q,
		"results": results,
	})
}

func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.cart.Snapshot())
}

type addItemRequest struct {
	Code string `json:"code" binding:"required"`
}

func (s *Server) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	p, ok := s.catalog.ByCode(req.Code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	s.cart.AddItem(p)
	c.JSON(http.StatusOK, s.cart.Snapshot())
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	s.cart.UpdateQuantity(c.Param("code"), req.Quantity)
	c.JSON(http.StatusOK, s.cart.Snapshot())
}

func (s *Server) removeCartItem(c *gin.Context) {
	s.cart.RemoveItem(c.Param("code"))
	c.JSON(http.StatusOK, s.cart.Snapshot())
}

func (s *Server) clearCart(c *gin.Context) {
	s.cart.ClearCart()
	c.JSON(http.StatusOK, s.cart.Snapshot())
}

// postCheckout builds the WhatsApp handoff for the current cart. The
// cart is left untouched; the customer completes the order in the chat.
func (s *Server) postCheckout(c *gin.Context) {
	snap := s.cart.Snapshot()

	link, err := s.checkout.URL(snap)
	if err == checkout.ErrEmptyCart {
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		return
	}
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("checkout handoff failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		return
	}

	msg, _ := s.checkout.Message(snap)
	c.JSON(http.StatusOK, gin.H{
		"url":         link,
		"message":     msg,
		"total_items": snap.TotalItems,
	})
}

func (s *Server) getImage(c *gin.Context) {
	width := 0
	if raw := c.Query("w"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			width = v
		}
	}

	data, contentType := s.assets.Image(c.Param("name"), width)
	c.Data(http.StatusOK, contentType, data)
}
