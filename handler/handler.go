package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/charliez07/mini-market/domain"
	"github.com/charliez07/mini-market/usecase"
)

type createItemRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	Seller      string   `json:"seller"`
}

type bookItemRequest struct {
	Buyer string `json:"buyer"`
}

type sellerActionRequest struct {
	Seller string `json:"seller"`
}

type Handler struct {
	Items *usecase.ItemUsecase
}

func (h *Handler) GetPublicItems(c echo.Context) error {
	items := h.Items.ListPublic(c.Request().Context())
	countOp("list_public", nil)
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateItem(c echo.Context) error {
	req := new(createItemRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	item, err := h.Items.Create(c.Request().Context(), usecase.CreateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Seller:      req.Seller,
	})
	countOp("create", err)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) BookItem(c echo.Context) error {
	itemID, err := itemIDParam(c)
	if err != nil {
		countOp("book", err)
		return httpError(err)
	}

	req := new(bookItemRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	item, err := h.Items.Book(c.Request().Context(), itemID, req.Buyer)
	countOp("book", err)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *Handler) GetSellerItems(c echo.Context) error {
	items := h.Items.ListBySeller(c.Request().Context(), c.Param("seller"))
	countOp("list_by_seller", nil)
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetBuyerItems(c echo.Context) error {
	items := h.Items.ListByBuyer(c.Request().Context(), c.Param("buyer"))
	countOp("list_by_buyer", nil)
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) MarkItemSold(c echo.Context) error {
	itemID, err := itemIDParam(c)
	if err != nil {
		countOp("mark_sold", err)
		return httpError(err)
	}

	req := new(sellerActionRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	item, err := h.Items.MarkSold(c.Request().Context(), itemID, req.Seller)
	countOp("mark_sold", err)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *Handler) CancelBooking(c echo.Context) error {
	itemID, err := itemIDParam(c)
	if err != nil {
		countOp("cancel_booking", err)
		return httpError(err)
	}

	req := new(sellerActionRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	item, err := h.Items.CancelBooking(c.Request().Context(), itemID, req.Seller)
	countOp("cancel_booking", err)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, item)
}

// itemIDParam parses the :itemID path param. A non-numeric id cannot match
// any stored item, so it reports NotFound rather than a validation failure.
func itemIDParam(c echo.Context) (int, error) {
	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil {
		return 0, domain.Errorf(domain.ErrNotFound, "item not found")
	}
	return itemID, nil
}

// httpError maps an error kind onto the HTTP status contract: validation and
// state conflicts are 400, identity mismatches 403, unknown ids 404 and
// store failures 500.
func httpError(err error) error {
	switch domain.KindOf(err) {
	case domain.ErrValidation, domain.ErrConflict:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case domain.ErrNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case domain.ErrForbidden:
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
