package controller

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/distromart/product-service/internal/dto"
	"github.com/distromart/product-service/internal/service"
	pkgdto "github.com/distromart/product-service/pkg/dto"
	"github.com/distromart/product-service/pkg/errs"
	"github.com/distromart/product-service/pkg/response"
	"github.com/distromart/product-service/pkg/validation"
)

type Controller struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := Controller{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.GET("/products/options", c.GetProductOptions)
	e.GET("/products/stats/summary", c.GetProductStats)
	e.GET("/products/category/:category", c.GetProductsByCategory)
	e.GET("/products/:id", c.GetProductByID)
	e.POST("/products", c.AddProduct)
	e.PUT("/products/:id", c.UpdateProduct)
	e.DELETE("/products/:id", c.DeleteProduct)
}

// readImageUpload pulls the optional multipart file "image" out of the
// request. A JSON request or a multipart request without the file yields
// nil.
func readImageUpload(e echo.Context) (*dto.ImageUpload, error) {
	fileHeader, err := e.FormFile("image")
	if err != nil {
		return nil, nil
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return nil, errs.ErrNotAnImage
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return &dto.ImageUpload{Data: data, ContentType: contentType}, nil
}

func (c *Controller) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	data, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Products fetched successfully", data)
}

func (c *Controller) GetProductByID(e echo.Context) error {
	product, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Product fetched successfully", product)
}

func (c *Controller) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if fieldErrs := validation.Struct(payload); fieldErrs != nil {
		return response.WriteErrorResponse(e, errs.ErrValidation, fieldErrs)
	}

	upload, err := readImageUpload(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload, upload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, "Product created successfully", product)
}

func (c *Controller) UpdateProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if fieldErrs := validation.Struct(payload); fieldErrs != nil {
		return response.WriteErrorResponse(e, errs.ErrValidation, fieldErrs)
	}

	upload, err := readImageUpload(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), e.Param("id"), payload, upload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Product updated successfully", product)
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Product deleted successfully", nil)
}

func (c *Controller) GetProductOptions(e echo.Context) error {
	return response.WriteSuccessResponse(e, http.StatusOK, "Product options fetched successfully", c.service.GetProductOptions())
}

func (c *Controller) GetProductsByCategory(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsByCategory").Msg("")
	}

	category := e.Param("category")

	data, err := c.service.GetProductsByCategory(e.Request().Context(), category, filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, fmt.Sprintf("Products in %s category", category), data)
}

func (c *Controller) GetProductStats(e echo.Context) error {
	data, err := c.service.GetProductStats(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Product statistics fetched", data)
}
