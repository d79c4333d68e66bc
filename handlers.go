package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pennyflow/pennyflow_backend/config"
	"github.com/pennyflow/pennyflow_backend/middlewares"
	"github.com/pennyflow/pennyflow_backend/models"
	"github.com/pennyflow/pennyflow_backend/models/reports"
	"github.com/pennyflow/pennyflow_backend/utils"
	"github.com/pennyflow/pennyflow_backend/workflow"
)

func healthzHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func dashboardHandler(loader *workflow.SnapshotLoader, store *models.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		userID, ok := middlewares.UserIdFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}

		snapshot, _, err := loader.LoadSnapshot(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No user data found"})
				return
			}
			config.LogError(logger, "handlers.go", "dashboardHandler", "LoadSnapshot", userID.String(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error loading dashboard data"})
			return
		}

		ctx, span := tracer.Start(c.Request.Context(), "compute_dashboard")
		defer span.End()

		dashboard, err := reports.ComputeDashboard(ctx, store, *snapshot)
		if err != nil {
			config.LogError(logger, "handlers.go", "dashboardHandler", "ComputeDashboard", userID.String(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error computing dashboard data"})
			return
		}

		c.JSON(http.StatusOK, dashboard)
	}
}

func budgetsHandler(loader *workflow.SnapshotLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		userID, ok := middlewares.UserIdFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}

		budgets, fromCache, err := loader.LoadBudgets(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No budget data found for user"})
				return
			}
			config.LogError(logger, "handlers.go", "budgetsHandler", "LoadBudgets", userID.String(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error while loading budgets"})
			return
		}

		message := "Budgets loaded from database"
		if fromCache {
			message = "Budgets loaded from cache"
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": message,
			"budgets": budgets,
		})
	}
}

func transactionsHandler(loader *workflow.SnapshotLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		userID, ok := middlewares.UserIdFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "page must be an integer"})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "limit must be an integer"})
			return
		}

		transactions, _, err := loader.LoadTransactions(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No transaction data found for user"})
				return
			}
			config.LogError(logger, "handlers.go", "transactionsHandler", "LoadTransactions", userID.String(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error while loading transactions"})
			return
		}

		result, err := models.Paginate(transactions, page, limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if result == nil {
			// Nothing to paginate.
			c.JSON(http.StatusOK, gin.H{"transactions": []models.TransactionView{}, "has_more": false, "total": 0})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"transactions": result.Items,
			"has_more":     result.HasMore,
			"total":        result.Total,
		})
	}
}

type exportTransactionsQuery struct {
	Category string `form:"category" binding:"omitempty,txcategory"`
}

func exportTransactionsHandler(store *models.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()

		userID, ok := middlewares.UserIdFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}

		var query exportTransactionsQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid category"})
			return
		}

		transactions, err := store.GetAllTransactions(c.Request.Context(), userID)
		if err != nil {
			config.LogError(logger, "handlers.go", "exportTransactionsHandler", "GetAllTransactions", userID.String(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error while exporting transactions"})
			return
		}

		views := make([]models.TransactionView, 0, len(transactions))
		for _, t := range transactions {
			if query.Category != "" && t.Category != models.TransactionCategory(query.Category) {
				continue
			}
			views = append(views, t.ToView())
		}

		f, err := reports.ExportTransactionsExcel(views)
		if err != nil {
			config.LogError(logger, "handlers.go", "exportTransactionsHandler", "ExportTransactionsExcel", userID.String(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error while exporting transactions"})
			return
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="transactions.xlsx"`)
		if err := f.Write(c.Writer); err != nil {
			config.LogError(logger, "handlers.go", "exportTransactionsHandler", "Write", userID.String(), err)
		}
	}
}
