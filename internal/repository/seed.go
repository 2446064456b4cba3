package repository

import (
	"time"

	"github.com/iliyamo/land-marketplace/internal/model"
)

// SeedListings returns the built-in sample collection used when storage
// holds no snapshot.  A fresh copy is returned on every call.
func SeedListings() []model.Listing {
	out := make([]model.Listing, len(seedListings))
	for i, l := range seedListings {
		out[i] = l.Clone()
	}
	return out
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

var seedListings = []model.Listing{
	{
		ID:           "1",
		Title:        "Prime Residential Plot in Green Valley",
		Location:     "Green Valley, Bangalore",
		Price:        1500000,
		PlotSize:     "2400 sq ft",
		Type:         model.TypeResidential,
		Availability: model.Available,
		Description:  "Premium residential plot in a well-developed area with all modern amenities. Perfect for building your dream home.",
		Images:       []string{"https://images.pexels.com/photos/164558/pexels-photo-164558.jpeg"},
		OwnerID:      "sample1",
		OwnerName:    "Rajesh Kumar",
		OwnerPhone:   "+91 98765 43210",
		OwnerEmail:   "rajesh@email.com",
		Features:     []string{"Water Connection", "Electricity", "Road Access", "Clear Title"},
		CreatedAt:    mustTime("2024-01-15T10:00:00Z"),
	},
	{
		ID:           "2",
		Title:        "Commercial Land Near IT Hub",
		Location:     "Electronic City, Bangalore",
		Price:        3500000,
		PlotSize:     "5000 sq ft",
		Type:         model.TypeCommercial,
		Availability: model.Available,
		Description:  "Strategic commercial plot near major IT companies. Excellent investment opportunity with high appreciation potential.",
		Images:       []string{"https://images.pexels.com/photos/221540/pexels-photo-221540.jpeg"},
		OwnerID:      "sample2",
		OwnerName:    "Priya Sharma",
		OwnerPhone:   "+91 87654 32109",
		OwnerEmail:   "priya@email.com",
		Features:     []string{"Corner Plot", "Wide Road", "Commercial Zone", "Metro Connectivity"},
		CreatedAt:    mustTime("2024-01-14T15:30:00Z"),
	},
	{
		ID:           "3",
		Title:        "Fertile Agricultural Land",
		Location:     "Mysore Highway, Karnataka",
		Price:        800000,
		PlotSize:     "2 acres",
		Type:         model.TypeAgricultural,
		Availability: model.Available,
		Description:  "Fertile agricultural land with water facility. Ideal for organic farming or investment purposes.",
		Images:       []string{"https://images.pexels.com/photos/974314/pexels-photo-974314.jpeg"},
		OwnerID:      "sample3",
		OwnerName:    "Suresh Reddy",
		OwnerPhone:   "+91 76543 21098",
		OwnerEmail:   "suresh@email.com",
		Features:     []string{"Bore Well", "Fertile Soil", "Irrigation", "Road Access"},
		CreatedAt:    mustTime("2024-01-13T09:15:00Z"),
	},
	{
		ID:           "4",
		Title:        "Premium Villa Plot in Whitefield",
		Location:     "Whitefield, Bangalore",
		Price:        2200000,
		PlotSize:     "3600 sq ft",
		Type:         model.TypeResidential,
		Availability: model.Available,
		Description:  "Spacious residential plot in premium locality. Close to schools, hospitals, and shopping centers.",
		Images:       []string{"https://images.pexels.com/photos/1115804/pexels-photo-1115804.jpeg"},
		OwnerID:      "sample4",
		OwnerName:    "Anita Desai",
		OwnerPhone:   "+91 65432 10987",
		OwnerEmail:   "anita@email.com",
		Features:     []string{"Gated Community", "Park Facing", "Premium Location", "All Amenities"},
		CreatedAt:    mustTime("2024-01-12T14:20:00Z"),
	},
	{
		ID:           "5",
		Title:        "Industrial Plot in KIADB",
		Location:     "KIADB, Tumkur",
		Price:        5000000,
		PlotSize:     "1 acre",
		Type:         model.TypeCommercial,
		Availability: model.Available,
		Description:  "KIADB approved industrial plot with all necessary clearances. Perfect for manufacturing setup.",
		Images:       []string{"https://apollo.olx.in/v1/files/mktnl6e5q5v92-IN/image"},
		OwnerID:      "sample5",
		OwnerName:    "Mahesh Patel",
		OwnerPhone:   "+91 54321 09876",
		OwnerEmail:   "mahesh@email.com",
		Features:     []string{"KIADB Approved", "Industrial Zone", "Power Supply", "Transportation"},
		CreatedAt:    mustTime("2024-01-11T11:45:00Z"),
	},
	{
		ID:           "6",
		Title:        "Scenic Plot Near Lake",
		Location:     "Yelahanka, Bangalore",
		Price:        1800000,
		PlotSize:     "3000 sq ft",
		Type:         model.TypeResidential,
		Availability: model.Available,
		Description:  "Beautiful residential plot overlooking the lake. Serene environment perfect for peaceful living.",
		Images:       []string{"https://images.pexels.com/photos/129731/pexels-photo-129731.jpeg"},
		OwnerID:      "sample6",
		OwnerName:    "Kavitha Nair",
		OwnerPhone:   "+91 43210 98765",
		OwnerEmail:   "kavitha@email.com",
		Features:     []string{"Lake View", "Peaceful Location", "Good Connectivity", "Appreciation Potential"},
		CreatedAt:    mustTime("2024-01-10T16:30:00Z"),
	},
	{
		ID:           "7",
		Title:        "Highway Facing Commercial Plot",
		Location:     "Hosur Road, Bangalore",
		Price:        4200000,
		PlotSize:     "6000 sq ft",
		Type:         model.TypeCommercial,
		Availability: model.Available,
		Description:  "Prime commercial plot facing main highway. High visibility location ideal for showrooms or offices.",
		Images:       []string{"https://images.pexels.com/photos/280229/pexels-photo-280229.jpeg"},
		OwnerID:      "sample7",
		OwnerName:    "Ravi Krishnan",
		OwnerPhone:   "+91 32109 87654",
		OwnerEmail:   "ravi@email.com",
		Features:     []string{"Highway Facing", "High Visibility", "Commercial Zone", "Investment Grade"},
		CreatedAt:    mustTime("2024-01-09T13:15:00Z"),
	},
	{
		ID:           "8",
		Title:        "Organic Farm Land",
		Location:     "Doddaballapur, Bangalore Rural",
		Price:        1200000,
		PlotSize:     "3 acres",
		Type:         model.TypeAgricultural,
		Availability: model.Available,
		Description:  "Perfect for organic farming with natural water source. Chemical-free soil ideal for sustainable agriculture.",
		Images:       []string{"https://images.pexels.com/photos/533988/pexels-photo-533988.jpeg"},
		OwnerID:      "sample8",
		OwnerName:    "Lakshmi Rao",
		OwnerPhone:   "+91 21098 76543",
		OwnerEmail:   "lakshmi@email.com",
		Features:     []string{"Natural Water", "Organic Soil", "Peaceful Location", "Good Access"},
		CreatedAt:    mustTime("2024-01-08T10:00:00Z"),
	},
	{
		ID:           "9",
		Title:        "Premium Residential Plot in Sarjapur",
		Location:     "Sarjapur Road, Bangalore",
		Price:        2800000,
		PlotSize:     "4000 sq ft",
		Type:         model.TypeResidential,
		Availability: model.Available,
		Description:  "Premium residential plot in rapidly developing area. Close to IT corridor and excellent infrastructure.",
		Images:       []string{"https://images.pexels.com/photos/1029599/pexels-photo-1029599.jpeg"},
		OwnerID:      "sample9",
		OwnerName:    "Vikram Singh",
		OwnerPhone:   "+91 10987 65432",
		OwnerEmail:   "vikram@email.com",
		Features:     []string{"IT Corridor", "Premium Locality", "Infrastructure Ready", "Investment Potential"},
		CreatedAt:    mustTime("2024-01-07T17:45:00Z"),
	},
	{
		ID:           "10",
		Title:        "Corner Plot in Residential Layout",
		Location:     "JP Nagar, Bangalore",
		Price:        1900000,
		PlotSize:     "2800 sq ft",
		Type:         model.TypeResidential,
		Availability: model.Available,
		Description:  "Corner residential plot in established layout. Excellent for villa construction with ample space.",
		Images:       []string{"https://imagecdn.99acres.com/media1/29239/11/584791631M-1744113558211.webp"},
		OwnerID:      "sample10",
		OwnerName:    "Deepa Menon",
		OwnerPhone:   "+91 09876 54321",
		OwnerEmail:   "deepa@email.com",
		Features:     []string{"Corner Plot", "Established Area", "Good Infrastructure", "Villa Plot"},
		CreatedAt:    mustTime("2024-01-06T12:30:00Z"),
	},
}
