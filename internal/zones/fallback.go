package zones

import "github.com/imanhub/solat-server/internal/model"

func ptr(f float64) *float64 { return &f }

// fallbackZones keeps the service partially usable when the zone source is
// down: the state capitals plus the federal territories.
var fallbackZones = []model.Zone{
	{Code: "WLY01", Region: "Wilayah Persekutuan", District: "Kuala Lumpur, Putrajaya", Lat: ptr(3.1390), Lng: ptr(101.6869)},
	{Code: "WLY02", Region: "Wilayah Persekutuan", District: "Labuan", Lat: ptr(5.2831), Lng: ptr(115.2308)},
	{Code: "SGR01", Region: "Selangor", District: "Gombak, Petaling, Hulu Langat", Lat: ptr(3.0738), Lng: ptr(101.5183)},
	{Code: "JHR02", Region: "Johor", District: "Johor Bahru, Kota Tinggi, Mersing", Lat: ptr(1.4655), Lng: ptr(103.7578)},
	{Code: "PNG01", Region: "Pulau Pinang", District: "Seluruh Negeri", Lat: ptr(5.4141), Lng: ptr(100.3288)},
	{Code: "PRK02", Region: "Perak", District: "Ipoh, Batu Gajah, Kampar", Lat: ptr(4.5975), Lng: ptr(101.0901)},
	{Code: "KTN01", Region: "Kelantan", District: "Kota Bharu, Bachok, Pasir Puteh", Lat: ptr(6.1254), Lng: ptr(102.2381)},
	{Code: "TRG01", Region: "Terengganu", District: "Kuala Terengganu, Marang", Lat: ptr(5.3302), Lng: ptr(103.1408)},
	{Code: "PHG02", Region: "Pahang", District: "Kuantan, Pekan, Rompin", Lat: ptr(3.8077), Lng: ptr(103.3260)},
	{Code: "MLK01", Region: "Melaka", District: "Seluruh Negeri", Lat: ptr(2.1896), Lng: ptr(102.2501)},
	{Code: "NGS02", Region: "Negeri Sembilan", District: "Seremban, Port Dickson", Lat: ptr(2.7297), Lng: ptr(101.9381)},
	{Code: "KDH01", Region: "Kedah", District: "Kota Setar, Kubang Pasu, Pokok Sena", Lat: ptr(6.1248), Lng: ptr(100.3678)},
	{Code: "PLS01", Region: "Perlis", District: "Seluruh Negeri", Lat: ptr(6.4414), Lng: ptr(100.1986)},
	{Code: "SBH07", Region: "Sabah", District: "Kota Kinabalu, Penampang, Papar", Lat: ptr(5.9804), Lng: ptr(116.0735)},
	{Code: "SWK08", Region: "Sarawak", District: "Kuching, Bau, Lundu", Lat: ptr(1.5535), Lng: ptr(110.3593)},
}
