package main

import (
	"pawmart/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ProductModel{},
		model.CategoryModel{},
		model.ServiceOfferingModel{},
		model.DeliveryZoneModel{},
		model.ReviewModel{},
		model.CartModel{},
		model.CartItemModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.OrderStatusHistoryModel{},
		model.InventoryAlertModel{},
		model.PaymentModel{},
		model.AppointmentModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
