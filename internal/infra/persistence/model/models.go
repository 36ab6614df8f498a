// Package model holds the GORM structs that mirror the PostgreSQL schema.
package model

// All returns every model in dependency order, for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&UserProfileModel{},
		&UserKYCModel{},
		&UserVerificationModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&UserDeviceModel{},
		&CategoryModel{},
		&ProductModel{},
		&ProductImageModel{},
		&ProductReviewModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&OrderStatusHistoryModel{},
		&PaymentModel{},
		&CommunityRoomModel{},
		&CommunityPostModel{},
		&CommunityMessageModel{},
		&PrivateMessageModel{},
		&AdvertisementModel{},
		&AdvertisementSlotModel{},
		&UserActivityModel{},
		&ProductViewModel{},
		&SearchQueryModel{},
		&RevenueReportModel{},
		&UserSignupModel{},
		&AdminActionModel{},
		&ReportModel{},
		&SystemSettingModel{},
	}
}
