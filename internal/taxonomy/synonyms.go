// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package taxonomy

// Entry declares one canonical value and the colloquial terms that resolve to
// it. Declaration order is significant: it drives fuzzy tie-breaking and the
// order of taxonomy listings.
type Entry[T ~string] struct {
	Value    T
	Synonyms []string
}

// Synonym sources: Malay, Manglish/Singlish, and Chinese-dialect loanwords in
// everyday use across Malaysian and Singaporean food talk. Synonyms are
// compared after normalization, so "Ta Pau", "tapau", and "TAPAU!" are one
// key. A synonym may repeat its own canonical name in spaced form ("kopi
// tiam" for kopitiam); the index deduplicates those.

var cuisineVocabulary = []Entry[Cuisine]{
	{CuisineMalay, []string{"melayu", "masakan melayu"}},
	{CuisineChinese, []string{"cina", "zi char", "tze char"}},
	{CuisineIndian, []string{"banana leaf", "mamak food"}},
	{CuisinePeranakan, []string{"nyonya", "nonya", "baba nyonya", "straits chinese"}},
	{CuisineThai, []string{"siam", "siamese"}},
	{CuisineJapanese, []string{"jepun"}},
	{CuisineKorean, []string{"korea"}},
	{CuisineVietnamese, []string{"viet", "vietnam"}},
	{CuisineIndonesian, []string{"indon", "padang", "nasi padang"}},
	{CuisineWestern, []string{"ang moh", "ang moh food"}},
	{CuisineItalian, []string{"itali"}},
	{CuisineMiddleEastern, []string{"arab", "arabic", "middle east"}},
	{CuisineSeafood, []string{"makanan laut", "ikan bakar"}},
	{CuisineVegetarian, []string{"veg", "sayur"}},
	{CuisineDessert, []string{"kuih", "sweets", "pencuci mulut"}},
}

var establishmentVocabulary = []Entry[Establishment]{
	{EstablishmentRestaurant, []string{"restoran", "kedai makan", "eatery"}},
	{EstablishmentKopitiam, []string{"kopi tiam", "coffee shop", "kedai kopi"}},
	{EstablishmentHawkerStall, []string{"hawker", "kaki lima", "gerai", "warung", "street food", "penjaja"}},
	{EstablishmentMamak, []string{"mamak stall", "kedai mamak"}},
	{EstablishmentFoodCourt, []string{"medan selera", "hawker centre", "hawker center", "food centre"}},
	{EstablishmentCafe, []string{"kafe", "bistro"}},
	{EstablishmentFoodTruck, []string{"lori makanan"}},
	{EstablishmentFineDining, []string{"upscale dining"}},
	{EstablishmentBakery, []string{"kedai roti", "bakeri", "patisserie"}},
	{EstablishmentBar, []string{"pub", "tavern"}},
}

var serviceVocabulary = []Entry[Service]{
	{ServiceDineIn, []string{"dine in", "eat in", "makan sini"}},
	{ServiceTakeout, []string{"tapau", "ta pau", "da bao", "bungkus", "takeaway", "take away", "to go"}},
	{ServiceDelivery, []string{"penghantaran", "food delivery", "deliver"}},
	{ServiceDriveThrough, []string{"drive thru", "drive through", "pandu lalu"}},
	{ServiceOutdoorSeating, []string{"outdoor seat", "alfresco", "al fresco", "terrace", "patio", "outside seating"}},
	{ServiceCatering, []string{"katering", "caterer"}},
	{ServiceSelfService, []string{"layan diri", "self serve"}},
	{ServiceBuffet, []string{"bufet", "all you can eat"}},
	{ServiceReservations, []string{"reservation", "booking", "tempahan"}},
}
