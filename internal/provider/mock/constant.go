package mock

const (
	CurrencyCNY = "CNY"

	HotelTypeHotel     = "酒店"
	HotelTypeHomestay  = "民宿"
	HotelTypeApartment = "公寓"
	HotelTypeAll       = "所有"

	ModeTrain = "火车"
	ModePlane = "飞机"
)

var weatherConditions = []string{"晴朗", "多云", "小雨", "大雨"}
