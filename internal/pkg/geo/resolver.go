package geo

import "strings"

// Coordinate 城市的固定坐标与中文/越南语显示名
type Coordinate struct {
	Name string
	Lat  float64
	Lng  float64
}

// 越南主要省市坐标表。GA4 返回的是英文城市名，key 统一小写
var vietnamCities = map[string]Coordinate{
	"hanoi":            {Name: "Hà Nội", Lat: 21.0285, Lng: 105.8542},
	"ho chi minh city": {Name: "TP. Hồ Chí Minh", Lat: 10.8231, Lng: 106.6297},
	"da nang":          {Name: "Đà Nẵng", Lat: 16.0544, Lng: 108.2022},
	"hai phong":        {Name: "Hải Phòng", Lat: 20.8449, Lng: 106.6881},
	"can tho":          {Name: "Cần Thơ", Lat: 10.0452, Lng: 105.7469},
	"bien hoa":         {Name: "Biên Hòa", Lat: 10.9470, Lng: 106.8196},
	"hue":              {Name: "Huế", Lat: 16.4637, Lng: 107.5909},
	"nha trang":        {Name: "Nha Trang", Lat: 12.2388, Lng: 109.1967},
	"buon ma thuot":    {Name: "Buôn Ma Thuột", Lat: 12.6675, Lng: 108.0378},
	"quy nhon":         {Name: "Quy Nhơn", Lat: 13.7830, Lng: 109.2192},
	"vung tau":         {Name: "Vũng Tàu", Lat: 10.3460, Lng: 107.0843},
	"thai nguyen":      {Name: "Thái Nguyên", Lat: 21.5670, Lng: 105.8252},
	"nam dinh":         {Name: "Nam Định", Lat: 20.4388, Lng: 106.1621},
	"vinh":             {Name: "Vinh", Lat: 18.6796, Lng: 105.6813},
}

// Resolve 将 GA4 的城市名映射为固定坐标。未收录的城市返回 ok=false，
// 由调用方决定丢弃，不做任何猜测
func Resolve(city string) (Coordinate, bool) {
	c, ok := vietnamCities[strings.ToLower(strings.TrimSpace(city))]
	return c, ok
}
