package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"tally/internal/config"
	"tally/internal/handlers"
	"tally/internal/middleware"
	"tally/internal/services"
	"tally/internal/validator"
)

// setupRouter wires services and handlers onto a Gin engine.
func setupRouter(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	validator.Register()

	loc := appConfig.Location

	// Services
	userService := services.NewUserService(db)
	accountService := services.NewAccountService(db, loc)
	categoryService := services.NewCategoryService(db)
	ruleService := services.NewReferenceRuleService(db)
	transactionService := services.NewTransactionService(db, ruleService, loc)
	budgetService := services.NewBudgetService(db, loc)
	allocationService := services.NewAllocationService(db)
	incomeService := services.NewIncomeService(db, loc)
	fixedExpenseService := services.NewFixedExpenseService(db, loc)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	ruleHandler := handlers.NewRuleHandler(ruleService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	allocationHandler := handlers.NewAllocationHandler(allocationService, auditService)
	incomeHandler := handlers.NewIncomeHandler(incomeService, auditService)
	fixedExpenseHandler := handlers.NewFixedExpenseHandler(fixedExpenseService, auditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Bank-sync pipeline, authenticated by API key and acting for the named user
	pipeline := v1.Group("/pipeline/users/:userId")
	pipeline.Use(middleware.PipelineAuthMiddleware(appConfig.PipelineAPIKey), middleware.PipelineUser())
	pipeline.POST("/accounts", accountHandler.UpsertAccount)
	pipeline.POST("/accounts/:id/transactions/import", transactionHandler.ImportTransactions)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	accounts := protected.Group("/accounts")
	accounts.POST("", accountHandler.UpsertAccount)
	accounts.GET("", accountHandler.GetUserAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)
	accounts.POST("/:id/transactions/import", transactionHandler.ImportTransactions)

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.POST("/infer-frequency", transactionHandler.InferFrequency)
	transactions.GET("/category-averages", transactionHandler.GetCategoryAverages)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PATCH("/:id/category", transactionHandler.UpdateCategory)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)
	categories.GET("/:id/rules", ruleHandler.GetCategoryRules)
	categories.GET("/:id/transactions", transactionHandler.GetCategoryTransactions)

	rules := protected.Group("/rules")
	rules.GET("/:id", ruleHandler.GetRule)
	rules.PUT("/:id/amount-condition", ruleHandler.UpdateAmountCondition)
	rules.DELETE("/:id", ruleHandler.DeleteRule)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.POST("/:id/rollover", budgetHandler.RolloverBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	allocations := budgets.Group("/:id/allocations")
	allocations.POST("", allocationHandler.CreateAllocation)
	allocations.GET("", allocationHandler.GetAllocations)
	allocations.GET("/suggestions", allocationHandler.GetSuggestions)
	allocations.PUT("/:allocationId", allocationHandler.UpdateAllocation)
	allocations.DELETE("/:allocationId", allocationHandler.DeleteAllocation)

	income := budgets.Group("/:id/income")
	income.POST("", incomeHandler.CreateIncome)
	income.GET("", incomeHandler.GetIncomes)
	income.GET("/:incomeId", incomeHandler.GetIncome)
	income.PUT("/:incomeId", incomeHandler.UpdateIncome)
	income.DELETE("/:incomeId", incomeHandler.DeleteIncome)
	income.POST("/:incomeId/transactions", incomeHandler.TagTransaction)
	income.GET("/:incomeId/transactions", incomeHandler.GetTaggedTransactions)
	income.DELETE("/:incomeId/transactions/:transactionId", incomeHandler.UntagTransaction)
	income.GET("/:incomeId/frequency", incomeHandler.InferFrequency)

	expenses := budgets.Group("/:id/fixed-expenses")
	expenses.POST("", fixedExpenseHandler.CreateFixedExpense)
	expenses.GET("", fixedExpenseHandler.GetFixedExpenses)
	expenses.GET("/:expenseId", fixedExpenseHandler.GetFixedExpense)
	expenses.PUT("/:expenseId", fixedExpenseHandler.UpdateFixedExpense)
	expenses.DELETE("/:expenseId", fixedExpenseHandler.DeleteFixedExpense)
	expenses.POST("/:expenseId/transactions", fixedExpenseHandler.TagTransaction)
	expenses.GET("/:expenseId/transactions", fixedExpenseHandler.GetTaggedTransactions)
	expenses.DELETE("/:expenseId/transactions/:transactionId", fixedExpenseHandler.UntagTransaction)
	expenses.GET("/:expenseId/frequency", fixedExpenseHandler.InferFrequency)

	return router
}
