package store

import "github.com/Blac-guru/lenoxhill-healthcare/internal/models"

// Seed data for the demo store. Services and products are read-only for the
// public flows; the admin surface can append to them.

var seedServices = []models.Service{
	{
		Name:           "General Consultation",
		Description:    "Comprehensive health assessments and medical consultations for all age groups.",
		TargetAudience: "All ages",
		Hours:          "Mon-Fri 8AM-6PM",
		Location:       "Ground Floor",
		Icon:           "fa-stethoscope",
	},
	{
		Name:           "Pharmacy Services",
		Description:    "Full-service pharmacy with prescription and over-the-counter medications.",
		TargetAudience: "All patients",
		Hours:          "Daily 7AM-10PM",
		Location:       "Main Building",
		Icon:           "fa-pills",
	},
	{
		Name:           "Antenatal Care",
		Description:    "Comprehensive prenatal care for expectant mothers and their babies.",
		TargetAudience: "Expectant mothers",
		Hours:          "Mon-Sat 8AM-5PM",
		Location:       "Second Floor",
		Icon:           "fa-baby",
	},
	{
		Name:           "Laboratory Services",
		Description:    "Complete diagnostic testing with accurate and timely results.",
		TargetAudience: "All patients",
		Hours:          "Daily 6AM-8PM",
		Location:       "Ground Floor",
		Icon:           "fa-flask",
	},
	{
		Name:           "Family Planning",
		Description:    "Comprehensive reproductive health and family planning services.",
		TargetAudience: "Adults",
		Hours:          "Mon-Fri 9AM-5PM",
		Location:       "Second Floor",
		Icon:           "fa-heartbeat",
	},
	{
		Name:           "Immunization",
		Description:    "Vaccination services for children and adults, including travel vaccines.",
		TargetAudience: "All ages",
		Hours:          "Mon-Sat 8AM-4PM",
		Location:       "First Floor",
		Icon:           "fa-shield-alt",
	},
}

var seedProducts = []models.Product{
	// Prescription medications
	{
		Name:                 "Amoxicillin 250mg Capsules",
		Description:          "Broad-spectrum antibiotic for bacterial infections. Effective against respiratory tract infections, urinary tract infections, and skin infections. Take as prescribed by your doctor.",
		Price:                "180.00",
		Category:             "Prescription",
		TargetAge:            "Adults",
		InStock:              true,
		PrescriptionRequired: true,
		ImageURL:             "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:                 "Metformin 500mg Tablets",
		Description:          "First-line medication for Type 2 diabetes management. Helps control blood sugar levels and improves insulin sensitivity. Take with meals to reduce stomach upset.",
		Price:                "320.00",
		Category:             "Prescription",
		TargetAge:            "Adults",
		InStock:              true,
		PrescriptionRequired: true,
		ImageURL:             "https://images.unsplash.com/photo-1559757175-0eb30cd8c063?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:                 "Lisinopril 10mg Tablets",
		Description:          "ACE inhibitor for hypertension and heart failure management. Helps lower blood pressure and protects kidney function. Monitor blood pressure regularly during treatment.",
		Price:                "280.00",
		Category:             "Prescription",
		TargetAge:            "Adults",
		InStock:              true,
		PrescriptionRequired: true,
		ImageURL:             "https://images.unsplash.com/photo-1587854692152-cbe660dbde88?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:                 "Prednisolone 5mg Tablets",
		Description:          "Corticosteroid for inflammation and autoimmune conditions. Used for asthma, allergies, and inflammatory disorders. Follow tapering instructions carefully.",
		Price:                "240.00",
		Category:             "Prescription",
		TargetAge:            "Adults",
		InStock:              true,
		PrescriptionRequired: true,
		ImageURL:             "https://images.unsplash.com/photo-1576671081837-49000212a370?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:                 "Azithromycin 250mg Tablets",
		Description:          "Macrolide antibiotic for respiratory and soft tissue infections. Effective against atypical pneumonia and sexually transmitted infections. Complete full course.",
		Price:                "450.00",
		Category:             "Prescription",
		TargetAge:            "Adults",
		InStock:              true,
		PrescriptionRequired: true,
		ImageURL:             "https://images.unsplash.com/photo-1631549916768-4119b2e5f926?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},

	// Over-the-counter medications
	{
		Name:        "Paracetamol 500mg Tablets",
		Description: "Effective pain reliever and fever reducer for headaches, muscle pain, and fever. Safe for most adults and children over 12. Maximum 4g per day.",
		Price:       "120.00",
		Category:    "Over-the-Counter",
		TargetAge:   "Adults",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Ibuprofen 400mg Tablets",
		Description: "Anti-inflammatory pain reliever for arthritis, back pain, and menstrual cramps. Reduces inflammation and fever. Take with food to protect stomach.",
		Price:       "150.00",
		Category:    "Over-the-Counter",
		TargetAge:   "Adults",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1559757175-0eb30cd8c063?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Loratadine 10mg Tablets",
		Description: "Non-drowsy antihistamine for allergies, hay fever, and hives. Provides 24-hour relief from sneezing, runny nose, and itchy eyes.",
		Price:       "180.00",
		Category:    "Over-the-Counter",
		TargetAge:   "Adults",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1587854692152-cbe660dbde88?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Omeprazole 20mg Capsules",
		Description: "Proton pump inhibitor for heartburn and acid reflux. Reduces stomach acid production for up to 24 hours. Best taken before breakfast.",
		Price:       "220.00",
		Category:    "Over-the-Counter",
		TargetAge:   "Adults",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1576671081837-49000212a370?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Hydrocortisone 1% Cream",
		Description: "Topical corticosteroid for eczema, dermatitis, and insect bites. Reduces inflammation, itching, and redness. Apply thin layer 2-3 times daily.",
		Price:       "160.00",
		Category:    "Over-the-Counter",
		TargetAge:   "All ages",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1631549916768-4119b2e5f926?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},

	// Health supplements
	{
		Name:        "Vitamin D3 1000IU Tablets",
		Description: "Essential vitamin for bone health, immune function, and muscle strength. Supports calcium absorption and helps prevent osteoporosis. Take with fatty meal.",
		Price:       "850.00",
		Category:    "Supplements",
		TargetAge:   "Adults",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1559757175-0eb30cd8c063?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Omega-3 Fish Oil Capsules",
		Description: "High-quality EPA and DHA for heart health, brain function, and inflammation reduction. Supports cardiovascular health and cognitive function.",
		Price:       "1200.00",
		Category:    "Supplements",
		TargetAge:   "Adults",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1587854692152-cbe660dbde88?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Multivitamin Complex",
		Description: "Complete daily vitamin and mineral supplement with 23 essential nutrients. Supports energy, immunity, and overall wellness. One tablet daily with breakfast.",
		Price:       "980.00",
		Category:    "Supplements",
		TargetAge:   "Adults",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1576671081837-49000212a370?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Iron 65mg Tablets",
		Description: "Iron supplement for anemia treatment and prevention. Supports red blood cell formation and oxygen transport. Take on empty stomach for best absorption.",
		Price:       "420.00",
		Category:    "Supplements",
		TargetAge:   "Adults",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1631549916768-4119b2e5f926?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Calcium + Vitamin D Tablets",
		Description: "Combined calcium and vitamin D for bone health. Helps prevent osteoporosis and supports muscle function. Essential for women over 40.",
		Price:       "650.00",
		Category:    "Supplements",
		TargetAge:   "Adults",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},

	// Baby care
	{
		Name:        "Infant Formula Stage 1 (0-6 months)",
		Description: "Complete nutrition for newborns and infants up to 6 months. Enriched with DHA, ARA, and essential vitamins for healthy brain and eye development.",
		Price:       "1200.00",
		Category:    "Baby Care",
		TargetAge:   "Children",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1631549916768-4119b2e5f926?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Baby Paracetamol Suspension",
		Description: "Safe fever and pain relief for infants and children 2 months to 6 years. Sugar-free strawberry flavor. Includes dosing syringe for accurate measurement.",
		Price:       "280.00",
		Category:    "Baby Care",
		TargetAge:   "Children",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1559757175-0eb30cd8c063?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Baby Cough & Cold Syrup",
		Description: "Gentle relief for children's cough and cold symptoms. Natural honey-based formula suitable for children over 1 year. Soothes throat irritation.",
		Price:       "320.00",
		Category:    "Baby Care",
		TargetAge:   "Children",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1587854692152-cbe660dbde88?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Baby Zinc Oxide Diaper Cream",
		Description: "Protective barrier cream for diaper rash prevention and treatment. Contains 40% zinc oxide for maximum protection. Fragrance-free and hypoallergenic.",
		Price:       "450.00",
		Category:    "Baby Care",
		TargetAge:   "Children",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1576671081837-49000212a370?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Children's Multivitamin Gummies",
		Description: "Delicious gummy vitamins with essential nutrients for growing children. Supports immune system, brain development, and healthy growth. Ages 2-12.",
		Price:       "680.00",
		Category:    "Baby Care",
		TargetAge:   "Children",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},

	// Medical devices
	{
		Name:        "Digital Thermometer",
		Description: "Fast and accurate oral, rectal, and underarm temperature measurement. Fever alert feature with memory recall. Waterproof and easy to clean.",
		Price:       "450.00",
		Category:    "Medical Devices",
		TargetAge:   "All ages",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1631549916768-4119b2e5f926?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Blood Pressure Monitor",
		Description: "Automatic upper arm blood pressure monitor with irregular heartbeat detection. Large LCD display and memory for 2 users. WHO indicator included.",
		Price:       "2800.00",
		Category:    "Medical Devices",
		TargetAge:   "Adults",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1559757175-0eb30cd8c063?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Glucose Meter Kit",
		Description: "Complete blood glucose monitoring system for diabetes management. Includes meter, test strips, lancets, and carrying case. No coding required.",
		Price:       "1800.00",
		Category:    "Medical Devices",
		TargetAge:   "Adults",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1587854692152-cbe660dbde88?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "Pulse Oximeter",
		Description: "Fingertip pulse oximeter measures blood oxygen saturation and pulse rate. LED display with adjustable brightness. Essential for respiratory monitoring.",
		Price:       "1200.00",
		Category:    "Medical Devices",
		TargetAge:   "All ages",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1576671081837-49000212a370?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		Name:        "First Aid Kit Complete",
		Description: "Comprehensive first aid kit with 100+ pieces including bandages, antiseptics, pain relievers, and emergency supplies. Perfect for home and travel.",
		Price:       "2200.00",
		Category:    "Medical Devices",
		TargetAge:   "All ages",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
}
