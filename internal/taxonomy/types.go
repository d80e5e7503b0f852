// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package taxonomy

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Cuisine identifies a canonical cuisine classification.
type Cuisine string

const (
	CuisineMalay         Cuisine = "malay"
	CuisineChinese       Cuisine = "chinese"
	CuisineIndian        Cuisine = "indian"
	CuisinePeranakan     Cuisine = "peranakan"
	CuisineThai          Cuisine = "thai"
	CuisineJapanese      Cuisine = "japanese"
	CuisineKorean        Cuisine = "korean"
	CuisineVietnamese    Cuisine = "vietnamese"
	CuisineIndonesian    Cuisine = "indonesian"
	CuisineWestern       Cuisine = "western"
	CuisineItalian       Cuisine = "italian"
	CuisineMiddleEastern Cuisine = "middle_eastern"
	CuisineSeafood       Cuisine = "seafood"
	CuisineVegetarian    Cuisine = "vegetarian"
	CuisineDessert       Cuisine = "dessert"
)

// Establishment identifies a canonical establishment type.
type Establishment string

const (
	EstablishmentRestaurant  Establishment = "restaurant"
	EstablishmentKopitiam    Establishment = "kopitiam"
	EstablishmentHawkerStall Establishment = "hawker_stall"
	EstablishmentMamak       Establishment = "mamak"
	EstablishmentFoodCourt   Establishment = "food_court"
	EstablishmentCafe        Establishment = "cafe"
	EstablishmentFoodTruck   Establishment = "food_truck"
	EstablishmentFineDining  Establishment = "fine_dining"
	EstablishmentBakery      Establishment = "bakery"
	EstablishmentBar         Establishment = "bar"
)

// Service identifies a canonical service type.
type Service string

const (
	ServiceDineIn         Service = "dine_in"
	ServiceTakeout        Service = "takeout"
	ServiceDelivery       Service = "delivery"
	ServiceDriveThrough   Service = "drive_through"
	ServiceOutdoorSeating Service = "outdoor_seating"
	ServiceCatering       Service = "catering"
	ServiceSelfService    Service = "self_service"
	ServiceBuffet         Service = "buffet"
	ServiceReservations   Service = "reservations"
)

// Domain name labels, used in logs, metrics, and resolution events.
const (
	DomainCuisine       = "cuisine"
	DomainEstablishment = "establishment_type"
	DomainService       = "service_type"
)

// DisplayName renders a canonical value for human display:
// "middle_eastern" becomes "Middle Eastern".
func DisplayName[T ~string](v T) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(v), "_", " "))
}
