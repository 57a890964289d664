package settlement

import (
	"gorm.io/datatypes"

	"github.com/ikkim/gonggu-backend/internal/app/model"
)

func line(itemID string, price float64, qty int) model.OrderLine {
	return model.OrderLine{ItemID: itemID, Price: price, Quantity: qty}
}

func order(groupID, memberID string, lines ...model.OrderLine) model.Order {
	return model.Order{ID: groupID + "-" + memberID, GroupID: groupID, MemberID: memberID, Lines: lines}
}

func freightGroup() model.Group {
	return model.Group{
		ID:            "g1",
		Title:         "봄 굿즈 공구",
		ExchangeRate:  0.25,
		ShippingFee:   1000,
		PaymentStatus: model.PaymentFreightBilling,
		Items: []model.Item{
			{ID: "acrylic", Name: "Acrylic stand", Price: 1500},
			{ID: "badge", Name: "Can badge", Price: 500},
		},
		SecondPayment: model.SecondPayment{
			Weights:       datatypes.JSONMap{"acrylic": 0.5},
			BoxWeight:     1,
			MinChargeDiff: 100,
		},
	}
}
