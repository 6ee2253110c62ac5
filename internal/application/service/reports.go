package service

import (
	"time"

	"github.com/mkravets/shop-analytics/internal/analytics"
)

// Report payloads. Every field is a fixed struct or a non-nil slice with a
// zero value, never an optional/null, so consumers always see a stable shape.

type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type RecentOrder struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type OverviewReport struct {
	TotalUsers              int           `json:"totalUsers"`
	TotalOrders             int           `json:"totalOrders"`
	TotalRevenue            float64       `json:"totalRevenue"`
	RecentOrders            []RecentOrder `json:"recentOrders"`
	RecentOrdersCount       int           `json:"recentOrdersCount"`
	OrderStatusDistribution []StatusCount `json:"orderStatusDistribution"`
}

type ProductSales struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	TotalSold int     `json:"totalSold"`
	Revenue   float64 `json:"revenue"`
}

type CategorySales struct {
	Category   string  `json:"category"`
	TotalSales float64 `json:"totalSales"`
	Count      int     `json:"count"`
}

type SalesReport struct {
	TimeFrame          string                `json:"timeFrame"`
	SalesSeries        analytics.SalesSeries `json:"salesSeries"`
	TopSellingProducts []ProductSales        `json:"topSellingProducts"`
	SalesByCategory    []CategorySales       `json:"salesByCategory"`
}

type RegistrationPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type EngagedUser struct {
	UserID     string  `json:"userId"`
	Name       string  `json:"name"`
	OrderCount int     `json:"orderCount"`
	TotalSpent float64 `json:"totalSpent"`
}

type UsersReport struct {
	TotalUsers            int                 `json:"totalUsers"`
	RegistrationsOverTime []RegistrationPoint `json:"registrationsOverTime"`
	RoleDistribution      []RoleCount         `json:"roleDistribution"`
	ActiveUsersCount      int                 `json:"activeUsersCount"`
	TopEngagedUsers       []EngagedUser       `json:"topEngagedUsers"`
}

type StockProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	SellerID string `json:"sellerId"`
}

type StockLevel struct {
	Level    string         `json:"level"`
	Count    int            `json:"count"`
	Products []StockProduct `json:"products"`
}

type ProductPerformance struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	TotalSold    int     `json:"totalSold"`
	Revenue      float64 `json:"revenue"`
	AveragePrice float64 `json:"averagePrice"`
}

type PerformanceBreakdown struct {
	BestSelling  []ProductPerformance `json:"bestSelling"`
	WorstSelling []ProductPerformance `json:"worstSelling"`
}

type CategoryStock struct {
	Category     string  `json:"category"`
	TotalStock   int     `json:"totalStock"`
	ProductCount int     `json:"productCount"`
	AverageStock float64 `json:"averageStock"`
}

type InventoryReport struct {
	LowStockProducts    []StockProduct       `json:"lowStockProducts"`
	StockLevelHistogram []StockLevel         `json:"stockLevelHistogram"`
	BestAndWorstSelling PerformanceBreakdown `json:"bestAndWorstSelling"`
	StockByCategory     []CategoryStock      `json:"stockByCategory"`
}

type SellerProductStats struct {
	TotalProducts       int `json:"totalProducts"`
	TotalActiveProducts int `json:"totalActiveProducts"`
	TotalStock          int `json:"totalStock"`
	LowStockProducts    int `json:"lowStockProducts"`
}

type SellerOrderStats struct {
	TotalOrders  int     `json:"totalOrders"`
	RecentOrders int     `json:"recentOrders"`
	TotalSales   float64 `json:"totalSales"`
}

type SellerOverviewReport struct {
	ProductStats SellerProductStats `json:"productStats"`
	OrderStats   SellerOrderStats   `json:"orderStats"`
}

type OrderStatusBreakdown struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Shipped    int `json:"shipped"`
	Delivered  int `json:"delivered"`
	Cancelled  int `json:"cancelled"`
}

type SellerSalesReport struct {
	TimeFrame            string                `json:"timeFrame"`
	SalesSeries          analytics.SalesSeries `json:"salesSeries"`
	OrderStatusBreakdown OrderStatusBreakdown  `json:"orderStatusBreakdown"`
}

type SellerRecentOrder struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type SellerLowStockProduct struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
}
