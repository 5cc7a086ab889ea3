package geo

// zoneCoords is the reference point per zone, roughly the main town of each
// zone's district group. Order is stable; Nearest depends on that for its
// tie-break.
var zoneCoords = []struct {
	code     string
	lat, lng float64
}{
	{"JHR01", 2.4500, 104.5200}, // Pulau Aur
	{"JHR02", 1.4655, 103.7578}, // Johor Bahru
	{"JHR03", 2.0251, 103.3328}, // Kluang
	{"JHR04", 1.8548, 102.9325}, // Batu Pahat
	{"KDH01", 6.1248, 100.3678}, // Alor Setar
	{"KDH02", 5.6500, 100.4900}, // Sungai Petani
	{"KDH03", 6.2632, 100.4214}, // Padang Terap
	{"KDH04", 5.7500, 100.7500}, // Baling
	{"KDH05", 5.3500, 100.5500}, // Bandar Baharu
	{"KDH06", 6.3300, 99.8500},  // Langkawi
	{"KDH07", 6.1000, 100.5500}, // Gunung Jerai
	{"KTN01", 6.1254, 102.2381}, // Kota Bharu
	{"KTN02", 4.8823, 101.9644}, // Gua Musang
	{"MLK01", 2.1896, 102.2501}, // Bandaraya Melaka
	{"NGS01", 2.4701, 102.2297}, // Tampin
	{"NGS02", 2.7297, 101.9381}, // Seremban
	{"NGS03", 2.7600, 102.2500}, // Kuala Pilah
	{"PHG01", 2.7900, 104.1700}, // Pulau Tioman
	{"PHG02", 3.8077, 103.3260}, // Kuantan
	{"PHG03", 3.5800, 102.7700}, // Maran
	{"PHG04", 3.5227, 101.9082}, // Bentong
	{"PHG05", 3.4213, 101.7935}, // Genting Sempah
	{"PHG06", 4.4702, 101.3767}, // Cameron Highlands
	{"PLS01", 6.4414, 100.1986}, // Kangar
	{"PNG01", 5.4141, 100.3288}, // George Town
	{"PRK01", 4.1985, 101.2603}, // Tapah
	{"PRK02", 4.5975, 101.0901}, // Ipoh
	{"PRK03", 5.1206, 100.9703}, // Lenggong
	{"PRK04", 5.4000, 101.3500}, // Temengor
	{"PRK05", 4.0259, 101.0213}, // Teluk Intan
	{"PRK06", 5.2630, 100.7000}, // Selama
	{"PRK07", 4.2105, 100.5504}, // Pangkor
	{"SBH01", 5.8402, 118.1179}, // Sandakan
	{"SBH04", 5.0268, 118.3353}, // Tawau
	{"SBH07", 5.9804, 116.0735}, // Kota Kinabalu
	{"SBH08", 5.3378, 116.1575}, // Keningau
	{"SGR01", 3.0738, 101.5183}, // Shah Alam
	{"SGR02", 3.3400, 101.2500}, // Kuala Selangor
	{"SGR03", 3.0449, 101.4455}, // Klang
	{"SWK01", 4.7500, 115.0000}, // Limbang
	{"SWK04", 4.3995, 113.9914}, // Miri
	{"SWK07", 1.8472, 110.3421}, // Samarahan
	{"SWK08", 1.5535, 110.3593}, // Kuching
	{"TRG01", 5.3302, 103.1408}, // Kuala Terengganu
	{"TRG02", 5.8330, 102.5500}, // Besut
	{"TRG03", 5.0700, 102.9500}, // Hulu Terengganu
	{"TRG04", 4.7693, 103.4175}, // Dungun
	{"WLY01", 3.1390, 101.6869}, // Kuala Lumpur
	{"WLY02", 5.2831, 115.2308}, // Labuan
}
