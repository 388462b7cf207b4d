// Package seed loads a starter dataset so a fresh installation has content
// to browse before anyone registers.
package seed

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func date(value string) *time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return &t
}

// EnsureAdmin creates the Admin account, or resets its password if an Admin
// already exists. The password comes from the caller, never from a constant.
func EnsureAdmin(db *sql.DB, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	var id string
	err = db.QueryRow("SELECT id FROM users WHERE role = ? LIMIT 1", models.RoleAdmin).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		_, err = db.Exec("INSERT INTO users(id, name, email, password_hash, role, language_pref, location) VALUES(?, ?, ?, ?, ?, ?, ?)",
			uuid.New().String(), "Admin User", email, string(hash), models.RoleAdmin, "EN", "Global")
		return err
	case err != nil:
		return err
	default:
		_, err = db.Exec("UPDATE users SET password_hash = ? WHERE id = ?", string(hash), id)
		return err
	}
}

// Run wipes every table and reloads the starter dataset. The admin password
// is applied to all seeded accounts; it exists for local development only.
func Run(db *sql.DB, seedPassword string) error {
	tables := []string{"forum_posts", "users", "crop_guides", "market_data", "government_schemes", "research_updates", "policies"}
	for _, table := range tables {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	userIDs, err := seedUsers(db, seedPassword)
	if err != nil {
		return err
	}
	if err := seedCropGuides(db); err != nil {
		return err
	}
	if err := seedMarketData(db); err != nil {
		return err
	}
	if err := seedSchemes(db); err != nil {
		return err
	}
	if err := seedResearch(db); err != nil {
		return err
	}
	if err := seedPolicies(db); err != nil {
		return err
	}
	return seedForumPosts(db, userIDs)
}

func seedUsers(db *sql.DB, password string) ([]string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := []models.User{
		{Name: "John Farmer", Email: "john@example.com", Role: models.RoleFarmer, LanguagePref: "EN", Location: "California, USA"},
		{Name: "Dr. Sarah Expert", Email: "sarah@example.com", Role: models.RoleExpert, LanguagePref: "EN", Location: "Iowa, USA"},
		{Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin, LanguagePref: "EN", Location: "Washington, DC"},
	}

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = uuid.New().String()
		_, err := db.Exec("INSERT INTO users(id, name, email, password_hash, role, language_pref, location) VALUES(?, ?, ?, ?, ?, ?, ?)",
			ids[i], u.Name, u.Email, string(hash), u.Role, u.LanguagePref, u.Location)
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func seedCropGuides(db *sql.DB) error {
	svc := services.NewCropGuideService(db)
	guides := []models.CropGuide{
		{
			Name: "Wheat", Season: "Winter", Soil: "Well-drained loamy soil",
			Water:    "Regular irrigation, 500-600mm annually",
			ImageURL: "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?auto=format&fit=crop&w=400&q=80",
			Diseases: []models.Disease{
				{Name: "Wheat Rust", Symptoms: "Orange-brown pustules on leaves", Treatment: "Fungicide application and resistant varieties"},
				{Name: "Powdery Mildew", Symptoms: "White powdery coating on leaves", Treatment: "Sulfur-based fungicides and proper spacing"},
			},
		},
		{
			Name: "Rice", Season: "Monsoon", Soil: "Clayey soil with good water retention",
			Water:    "Flooded conditions, 1200-1500mm annually",
			ImageURL: "https://images.unsplash.com/photo-1536304993881-ff6e9aefacd8?auto=format&fit=crop&w=400&q=80",
			Diseases: []models.Disease{
				{Name: "Rice Blast", Symptoms: "Diamond-shaped lesions on leaves", Treatment: "Systemic fungicides and field sanitation"},
				{Name: "Bacterial Blight", Symptoms: "Water-soaked lesions turning yellow-brown", Treatment: "Copper-based bactericides and resistant varieties"},
			},
		},
		{
			Name: "Corn", Season: "Spring-Summer", Soil: "Fertile, well-drained soil",
			Water:    "600-800mm annually, drought-sensitive",
			ImageURL: "https://images.unsplash.com/photo-1551754655-cd27e38d2076?auto=format&fit=crop&w=400&q=80",
			Diseases: []models.Disease{
				{Name: "Corn Borer", Symptoms: "Holes in leaves and stalks", Treatment: "Bt toxin crops and biological control"},
			},
		},
		{
			Name: "Soybean", Season: "Spring-Summer", Soil: "Well-drained fertile soil",
			Water:    "500-700mm annually",
			ImageURL: "https://images.unsplash.com/photo-1592982375567-7b3930a7f9a5?auto=format&fit=crop&w=400&q=80",
			Diseases: []models.Disease{
				{Name: "Soybean Rust", Symptoms: "Rust-colored spots on leaves", Treatment: "Fungicide application"},
			},
		},
		{
			Name: "Cotton", Season: "Spring-Summer", Soil: "Well-drained alluvial soil",
			Water:    "700-1000mm annually",
			ImageURL: "https://images.unsplash.com/photo-1594736797933-d0401ba2fe65?auto=format&fit=crop&w=400&q=80",
			Diseases: []models.Disease{
				{Name: "Cotton Bollworm", Symptoms: "Holes in bolls and leaves", Treatment: "Insecticide application"},
			},
		},
		{
			Name: "Sugarcane", Season: "Year-round", Soil: "Deep, fertile, well-drained soil",
			Water:    "1500-2500mm annually",
			ImageURL: "https://images.unsplash.com/photo-1574943320219-553eb213f72d?auto=format&fit=crop&w=400&q=80",
			Diseases: []models.Disease{
				{Name: "Red Rot", Symptoms: "Red discoloration in stalks", Treatment: "Disease-resistant varieties"},
			},
		},
		{
			Name: "Tomato", Season: "Spring-Summer", Soil: "Well-drained loamy soil",
			Water:    "500-700mm annually",
			ImageURL: "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?auto=format&fit=crop&w=400&q=80",
			Diseases: []models.Disease{
				{Name: "Late Blight", Symptoms: "Dark spots on leaves and fruits", Treatment: "Copper fungicides"},
			},
		},
		{
			Name: "Potato", Season: "Spring", Soil: "Sandy loam soil",
			Water:    "500-700mm annually",
			ImageURL: "https://images.unsplash.com/photo-1518977676601-b53f82aba655?auto=format&fit=crop&w=400&q=80",
			Diseases: []models.Disease{
				{Name: "Late Blight", Symptoms: "Brown spots on leaves", Treatment: "Fungicide application"},
			},
		},
	}
	for _, g := range guides {
		if _, err := svc.CreateGuide(g); err != nil {
			return err
		}
	}
	return nil
}

func seedMarketData(db *sql.DB) error {
	svc := services.NewMarketService(db)
	entries := []models.MarketData{
		{CropName: "Wheat", Region: "North America", Price: 320, Trend: models.TrendUp},
		{CropName: "Rice", Region: "Asia", Price: 410, Trend: models.TrendDown},
		{CropName: "Corn", Region: "Global", Price: 250, Trend: models.TrendUp},
		{CropName: "Soybean", Region: "South America", Price: 380, Trend: models.TrendDown},
		{CropName: "Cotton", Region: "India", Price: 150, Trend: models.TrendUp},
	}
	for _, e := range entries {
		if _, err := svc.CreateMarketData(e); err != nil {
			return err
		}
	}
	return nil
}

func seedSchemes(db *sql.DB) error {
	svc := services.NewSchemeService(db)
	schemes := []models.GovernmentScheme{
		{
			Title:              "Pradhan Mantri Kisan Samman Nidhi",
			Description:        "Direct income support to farmers through DBT",
			Category:           "Subsidy",
			Eligibility:        "Small and marginal farmers with landholding up to 2 hectares",
			Benefits:           "₹6,000 per year in three equal installments",
			ApplicationProcess: "Apply through CSC centers or online portal",
			Deadline:           date("2024-12-31"),
			ContactInfo:        "PM-KISAN Helpline: 155261",
			Region:             "India",
		},
		{
			Title:              "Farmers Producer Organization (FPO) Scheme",
			Description:        "Support for forming and nurturing Farmer Producer Organizations",
			Category:           "Training",
			Eligibility:        "Groups of farmers, cooperatives",
			Benefits:           "Up to ₹25 lakhs for business development",
			ApplicationProcess: "Apply through SFAC or state agencies",
			ContactInfo:        "SFAC: 011-23381385",
			Region:             "India",
		},
		{
			Title:              "Agricultural Credit Subsidy",
			Description:        "Interest subvention on agricultural loans",
			Category:           "Loan",
			Eligibility:        "All farmers for crop loans up to ₹3 lakhs",
			Benefits:           "3% interest subvention for timely repayment",
			ApplicationProcess: "Through banks and NBFCs",
			ContactInfo:        "Bank branches",
			Region:             "Global",
		},
	}
	for _, s := range schemes {
		if _, err := svc.CreateScheme(s); err != nil {
			return err
		}
	}
	return nil
}

func seedResearch(db *sql.DB) error {
	svc := services.NewResearchService(db)
	updates := []models.ResearchUpdate{
		{
			Title:         "Breakthrough in Drought-Resistant Wheat Varieties",
			Summary:       "New genetic modifications show 40% better water efficiency",
			Content:       "Researchers at the International Maize and Wheat Improvement Center (CIMMYT) have developed new wheat varieties that can maintain yields with 40% less water.",
			Author:        "Dr. Maria Rodriguez",
			Category:      "Crop Science",
			Tags:          []string{"wheat", "drought-resistance", "genetics"},
			PublishedDate: *date("2024-01-15"),
			ReadTime:      5,
			Views:         1250,
			Likes:         89,
		},
		{
			Title:         "AI-Powered Pest Detection System",
			Summary:       "Machine learning model achieves 95% accuracy in early pest identification",
			Content:       "A new AI system can detect crop pests and diseases from smartphone images with 95% accuracy, using deep learning trained on millions of crop images.",
			Author:        "Prof. James Chen",
			Category:      "Technology",
			Tags:          []string{"AI", "pest-detection", "machine-learning"},
			PublishedDate: *date("2024-01-10"),
			ReadTime:      7,
			Views:         2100,
			Likes:         156,
		},
		{
			Title:         "Sustainable Rice Farming Techniques",
			Summary:       "New methods reduce water usage by 30% while maintaining yields",
			Content:       "Researchers from the International Rice Research Institute (IRRI) have developed techniques that cut water consumption by 30% through alternate wetting and drying.",
			Author:        "Dr. Ahmed Hassan",
			Category:      "Sustainability",
			Tags:          []string{"rice", "water-conservation", "sustainable-farming"},
			PublishedDate: *date("2024-01-05"),
			ReadTime:      6,
			Views:         980,
			Likes:         67,
		},
	}
	for _, u := range updates {
		if _, err := svc.CreateUpdate(u); err != nil {
			return err
		}
	}
	return nil
}

func seedPolicies(db *sql.DB) error {
	svc := services.NewPolicyService(db)
	policies := []models.PolicyInformation{
		{
			Title:                 "National Agriculture Policy 2024",
			Summary:               "Comprehensive policy framework for sustainable agricultural development",
			Content:               "The National Agriculture Policy 2024 aims to double farmers' income by 2027 through technological innovation, sustainable practices, and market linkages.",
			Category:              "Agricultural Policy",
			Region:                "India",
			EffectiveDate:         date("2024-04-01"),
			ImplementingAuthority: "Ministry of Agriculture & Farmers Welfare",
			ContactInfo:           "policy@agriculture.gov.in",
		},
		{
			Title:                 "EU Green Deal Agricultural Reforms",
			Summary:               "Major reforms to make European agriculture climate-neutral by 2050",
			Content:               "The European Green Deal introduces reduced pesticide use by 50%, increased organic farming, and carbon farming incentives.",
			Category:              "Environmental Policy",
			Region:                "European Union",
			EffectiveDate:         date("2023-12-01"),
			ImplementingAuthority: "European Commission DG AGRI",
			ContactInfo:           "agri-green-deal@ec.europa.eu",
		},
		{
			Title:                 "Digital Agriculture Initiative",
			Summary:               "Framework for implementing digital technologies in farming",
			Content:               "Guidelines for implementing IoT sensors, drone technology, AI-powered analytics, and blockchain-based traceability systems in agricultural operations.",
			Category:              "Technology Policy",
			Region:                "Global",
			EffectiveDate:         date("2024-01-01"),
			ImplementingAuthority: "FAO Digital Agriculture Team",
			ContactInfo:           "digital@agriculture.org",
		},
	}
	for _, p := range policies {
		if _, err := svc.CreatePolicy(p); err != nil {
			return err
		}
	}
	return nil
}

func seedForumPosts(db *sql.DB, userIDs []string) error {
	svc := services.NewForumService(db)
	posts := []models.ForumPost{
		{
			UserID:  userIDs[0],
			Title:   "How to control aphids in tomato plants?",
			Content: "I'm seeing a lot of aphids on my tomato plants. What are the best organic methods to control them without harming beneficial insects?",
			Tags:    []string{"pest-control", "organic-farming", "tomatoes"},
			Upvotes: 15, ExpertReplies: true,
		},
		{
			UserID:  userIDs[1],
			Title:   "Best practices for soil health management",
			Content: "Key practices for maintaining soil health: crop rotation, cover cropping, organic matter addition, and minimal tillage.",
			Tags:    []string{"soil-health", "sustainable-farming", "expert-advice"},
			Upvotes: 28,
		},
		{
			UserID:  userIDs[0],
			Title:   "Water conservation techniques for drought-prone areas",
			Content: "Living in a drought-prone region, I'm looking for effective water conservation methods. Any recommendations for drip irrigation or rainwater harvesting?",
			Tags:    []string{"water-conservation", "drought", "irrigation"},
			Upvotes: 22, ExpertReplies: true,
		},
	}
	for _, p := range posts {
		if _, err := svc.CreatePost(p); err != nil {
			return err
		}
	}
	return nil
}
