package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/category"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ListProducts handles GET /api/products and GET /api/admin/products with
// optional status, category_id, search, page and limit parameters.
func (s *Server) ListProducts(ctx echo.Context) error {
	var status *product.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed := product.Status(raw)
		status = &parsed
	}

	rawCategory := ctx.QueryParam("category_id")
	categoryID, err := optionalUUID(&rawCategory)
	if err != nil {
		return badRequest(ctx, "Invalid category ID")
	}

	page, err := queryInt(ctx, "page")
	if err != nil {
		return badRequest(ctx, "Invalid page parameter")
	}
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		return badRequest(ctx, "Invalid limit parameter")
	}

	query, err := queries.NewListProductsQuery(status, categoryID, ctx.QueryParam("search"), page, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.listProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProductListResponse{
		Data:       toProductResponses(result.Data),
		Pagination: toPaginationResponse(result.Pagination),
	})
}

// GetProduct handles GET /api/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(result))
}

// LowStockProducts handles GET /api/admin/products/low-stock. The threshold
// comes from configuration, not from the caller.
func (s *Server) LowStockProducts(ctx echo.Context) error {
	query, err := queries.NewGetLowStockProductsQuery(s.lowStockThreshold)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getLowStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(result))
}

// CreateProduct handles POST /api/admin/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	categoryID, err := optionalUUID(req.CategoryID)
	if err != nil {
		return badRequest(ctx, "Invalid category ID")
	}

	price, salePrice, err := productMoney(req)
	if err != nil {
		return writeError(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID,
		req.Name, req.SKU, req.Description,
		categoryID,
		price, salePrice,
		req.Stock,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"message":    "Product created successfully",
		"product_id": productID.String(),
	})
}

// UpdateProduct handles PUT /api/admin/products/:id. Name and SKU are fixed
// at creation; everything else may change.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	var req ProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	categoryID, err := optionalUUID(req.CategoryID)
	if err != nil {
		return badRequest(ctx, "Invalid category ID")
	}

	price, salePrice, err := productMoney(req)
	if err != nil {
		return writeError(ctx, err)
	}

	status := product.StatusActive
	if req.Status != "" {
		status = product.Status(req.Status)
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID,
		req.Description,
		categoryID,
		price, salePrice,
		req.Stock,
		status,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Product updated successfully"})
}

// DeleteProduct handles DELETE /api/admin/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// ListCategories handles GET /api/categories and GET /api/admin/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	result, err := s.listCategoriesHandler.Handle(ctx.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CategoryResponse, len(result))
	for i, c := range result {
		response[i] = toCategoryResponse(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/admin/categories. The slug derives from
// the name; a duplicate slug answers 400.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var req CategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parentID, err := optionalUUID(req.ParentID)
	if err != nil {
		return badRequest(ctx, "Invalid parent category ID")
	}

	categoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(categoryID, req.Name, req.Description, parentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"message":     "Category created successfully",
		"category_id": categoryID.String(),
	})
}

// UpdateCategory handles PUT /api/admin/categories/:id.
func (s *Server) UpdateCategory(ctx echo.Context) error {
	categoryID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid category ID")
	}

	var req CategoryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parentID, err := optionalUUID(req.ParentID)
	if err != nil {
		return badRequest(ctx, "Invalid parent category ID")
	}

	status := category.StatusActive
	if req.Status != "" {
		status = category.Status(req.Status)
	}

	cmd, err := commands.NewUpdateCategoryCommand(categoryID, req.Name, req.Description, parentID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Category updated successfully"})
}

// DeleteCategory handles DELETE /api/admin/categories/:id. Categories that
// still hold products or subcategories are rejected.
func (s *Server) DeleteCategory(ctx echo.Context) error {
	categoryID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid category ID")
	}

	cmd, err := commands.NewDeleteCategoryCommand(categoryID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

// productMoney converts the request amounts into domain money.
func productMoney(req ProductRequest) (kernel.Money, *kernel.Money, error) {
	price, err := kernel.NewMoneyFromDecimal(req.Price)
	if err != nil {
		return kernel.Money{}, nil, err
	}

	var salePrice *kernel.Money
	if req.SalePrice != nil {
		sp, spErr := kernel.NewMoneyFromDecimal(*req.SalePrice)
		if spErr != nil {
			return kernel.Money{}, nil, spErr
		}
		salePrice = &sp
	}
	return price, salePrice, nil
}
