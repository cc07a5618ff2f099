package catalog

func strPtr(s string) *string { return &s }

// products is the full static dataset, immutable for the process lifetime.
var products = []Product{
	// Women
	{Code: "FM 2054", InspiredBy: "Light Blue", House: "Dolce & Gabbana", Gender: GenderWomen, Line: LineFM, Category: strPtr("Floral"), Image: "/images/fm-2054.png", Popularity: 85},
	{Code: "FM 2041", InspiredBy: "J'adore", House: "Christian Dior", Gender: GenderWomen, Line: LineFM, Image: "/images/fm-2041.webp", Popularity: 92},
	{Code: "FM 2035", InspiredBy: "Chanel N°5", House: "Chanel", Gender: GenderWomen, Line: LineFM, Category: strPtr("Floral frutal"), Image: "/images/fm-2035.webp", Popularity: 98},
	{Code: "FM 2028", InspiredBy: "Good Girl", House: "Carolina Herrera", Gender: GenderWomen, Line: LineFM, Category: strPtr("Oriental-floral"), Image: "/images/fm-2028.webp", Popularity: 94},
	{Code: "FM 2093", InspiredBy: "La Vie Est Belle", House: "Lancôme", Gender: GenderWomen, Line: LineFM, Category: strPtr("Oriental-floral"), Image: "/images/fm-2093.png", Popularity: 96},
	{Code: "FM 2066", InspiredBy: "SÍ 2013", House: "Giorgio Armani", Gender: GenderWomen, Line: LineFM, Category: strPtr("Frutal"), Image: "/images/fm-2066.png", Popularity: 78},
	{Code: "FM 2105", InspiredBy: "Lady Million", House: "Paco Rabanne", Gender: GenderWomen, Line: LineFM, Category: strPtr("Flores frutal"), Image: "/images/fm-2105.webp", Popularity: 88},
	{Code: "FM 2107", InspiredBy: "Olympea", House: "Paco Rabanne", Gender: GenderWomen, Line: LineFM, Category: strPtr("Floral oriental"), Image: "/images/fm-2107.webp", Popularity: 82},
	{Code: "FM 2122", InspiredBy: "Bright Crystal", House: "Versace", Gender: GenderWomen, Line: LineFM, Image: "/images/fm-2122.webp", Popularity: 79},
	{Code: "FM 2087", InspiredBy: "Flower by Kenzo", House: "Kenzo", Gender: GenderWomen, Line: LineFM, Image: "/images/fm-2087.png", Popularity: 75},

	// Men
	{Code: "HM 1010", InspiredBy: "Aventus", House: "Creed", Gender: GenderMen, Line: LineHM, Image: "/images/hm-1010.png", Popularity: 97},
	{Code: "HM 1034", InspiredBy: "Acqua di Gio", House: "Giorgio Armani", Gender: GenderMen, Line: LineHM, Category: strPtr("Aroma acuático"), Image: "/images/hm-1034.png", Popularity: 91},
	{Code: "HM 1035", InspiredBy: "Acqua di Gio Profumo", House: "Giorgio Armani", Gender: GenderMen, Line: LineHM, Image: "/images/hm-1035.webp", Popularity: 86},
	{Code: "HM 1059", InspiredBy: "Le Male", House: "Jean Paul Gaultier", Gender: GenderMen, Line: LineHM, Category: strPtr("Oriental"), Image: "/images/hm-1059.avif", Popularity: 84},
	{Code: "HM 1073", InspiredBy: "1 Million", House: "Paco Rabanne", Gender: GenderMen, Line: LineHM, Category: strPtr("Amaderado"), Image: "/images/hm-1073.webp", Popularity: 95},
	{Code: "HM 1078", InspiredBy: "Invictus", House: "Paco Rabanne", Gender: GenderMen, Line: LineHM, Image: "/images/hm-1078.webp", Popularity: 89},
	{Code: "HM 1026", InspiredBy: "Sauvage", House: "Christian Dior", Gender: GenderMen, Line: LineHM, Image: "/images/hm-1026.webp", Popularity: 99},
	{Code: "HM 1027", InspiredBy: "Sauvage Elixir", House: "Christian Dior", Gender: GenderMen, Line: LineHM, Image: "/images/hm-1027.jpg", Popularity: 90},
	{Code: "HM 1095", InspiredBy: "Eros Pour Homme", House: "Versace", Gender: GenderMen, Line: LineHM, Image: "/images/hm-1095.webp", Popularity: 87},
	{Code: "HM 1045", InspiredBy: "Boss Bottled", House: "Hugo Boss", Gender: GenderMen, Line: LineHM, Category: strPtr("Amaderado"), Image: "/images/hm-1045.webp", Popularity: 83},
}

// iconicCodes is the curated carousel subset, alternating women/men.
var iconicCodes = []string{
	"FM 2035", // Chanel N°5
	"HM 1026", // Sauvage
	"FM 2093", // La Vie Est Belle
	"HM 1010", // Aventus
	"FM 2028", // Good Girl
	"HM 1073", // 1 Million
}
