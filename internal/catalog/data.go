package catalog

// seedProducts is the fixed storefront collection. IDs and slugs are stable;
// the cart copies name, price, and image at add-time so edits here never
// rewrite carts already persisted.
var seedProducts = []Product{
	{
		ID: "p-001", Name: "Royal South Sea Strand", Slug: "royal-south-sea-strand",
		Price: 12500, Category: "Necklaces", Stock: 5,
		Description: "A graduated strand of Golden South Sea pearls, 12mm to 15mm, hand-selected for deep golden luster and roundness.",
		Images:      []string{"/images/products/royal-south-sea-strand-1.jpg", "/images/products/royal-south-sea-strand-2.jpg"},
		Colors:      []string{"Gold"},
		Metadata:    ProductMetadata{PearlType: "South Sea", Length: "18 inch", Grade: "AAA"},
	},
	{
		ID: "p-002", Name: "Akoya Classic Studs", Slug: "akoya-classic-studs",
		Price: 850, Category: "Earrings", Stock: 12,
		Description: "Timeless Akoya pearl stud earrings set in 18k white gold with mirror-like luster.",
		Images:      []string{"/images/products/akoya-classic-studs-1.jpg", "/images/products/akoya-classic-studs-2.jpg"},
		Colors:      []string{"White", "Cream"},
		Metadata:    ProductMetadata{PearlType: "Akoya", Length: "N/A", Grade: "AAA"},
	},
	{
		ID: "p-003", Name: "Tahitian Black Pearl Ring", Slug: "tahitian-black-pearl-ring",
		Price: 2400, Category: "Rings", Stock: 3,
		Description: "An 11mm Tahitian black pearl with peacock overtones in an 18k yellow gold bypass setting.",
		Images:      []string{"/images/products/tahitian-black-pearl-ring-1.jpg", "/images/products/tahitian-black-pearl-ring-2.jpg"},
		Colors:      []string{"Black"},
		Metadata:    ProductMetadata{PearlType: "Tahitian", Length: "N/A", Grade: "AA+"},
	},
	{
		ID: "p-004", Name: "Freshwater Baroque Bracelet", Slug: "freshwater-baroque-bracelet",
		Price: 550, Category: "Bracelets", Stock: 8,
		Description: "Large baroque freshwater pearls with rainbow iridescence, finished with a gold toggle clasp.",
		Images:      []string{"/images/products/freshwater-baroque-bracelet-1.jpg", "/images/products/freshwater-baroque-bracelet-2.jpg"},
		Colors:      []string{"White", "Multicolor"},
		Metadata:    ProductMetadata{PearlType: "Freshwater", Length: "7.5 inch", Grade: "AA"},
	},
	{
		ID: "p-005", Name: "Golden Drop Earrings", Slug: "golden-drop-earrings",
		Price: 4500, Category: "Earrings", Stock: 4,
		Description: "Matched 10mm Golden South Sea pearls suspended from diamond-accented gold hooks.",
		Images:      []string{"/images/products/golden-drop-earrings-1.jpg", "/images/products/golden-drop-earrings-2.jpg"},
		Colors:      []string{"Gold"},
		Metadata:    ProductMetadata{PearlType: "South Sea", Length: "N/A", Grade: "AAA"},
	},
	{
		ID: "p-006", Name: "Silver Tahitian Bracelet", Slug: "silver-tahitian-bracelet",
		Price: 1200, Category: "Bracelets", Stock: 6,
		Description: "Silver-grey Tahitian pearls on a flexible bangle, understated and modern.",
		Images:      []string{"/images/products/silver-tahitian-bracelet-1.jpg", "/images/products/silver-tahitian-bracelet-2.jpg"},
		Colors:      []string{"Black"},
		Metadata:    ProductMetadata{PearlType: "Tahitian", Length: "7 inch", Grade: "AA+"},
	},
	{
		ID: "p-007", Name: "Blush Freshwater Strand", Slug: "blush-freshwater-strand",
		Price: 650, Category: "Necklaces", Stock: 15,
		Description: "Soft blush freshwater pearls in a princess-length strand, an everyday essential.",
		Images:      []string{"/images/products/blush-freshwater-strand-1.jpg", "/images/products/blush-freshwater-strand-2.jpg"},
		Colors:      []string{"Cream", "Multicolor"},
		Metadata:    ProductMetadata{PearlType: "Freshwater", Length: "18 inch", Grade: "AA"},
	},
	{
		ID: "p-008", Name: "Diamond & Pearl Ring", Slug: "diamond-pearl-ring",
		Price: 2800, Category: "Rings", Stock: 2,
		Description: "A single Akoya pearl crowned by a halo of brilliant-cut diamonds in platinum.",
		Images:      []string{"/images/products/diamond-pearl-ring-1.jpg", "/images/products/diamond-pearl-ring-2.jpg"},
		Colors:      []string{"White"},
		Metadata:    ProductMetadata{PearlType: "Akoya", Length: "N/A", Grade: "AAA"},
	},
	{
		ID: "p-009", Name: "Baroque Statement Necklace", Slug: "baroque-statement-necklace",
		Price: 850, Category: "Necklaces", Stock: 7,
		Description: "Oversized baroque freshwater pearls knotted on silk, sized to make an entrance.",
		Images:      []string{"/images/products/baroque-statement-necklace-1.jpg", "/images/products/baroque-statement-necklace-2.jpg"},
		Colors:      []string{"White"},
		Metadata:    ProductMetadata{PearlType: "Freshwater", Length: "20 inch", Grade: "AA"},
	},
	{
		ID: "p-010", Name: "Opera Length Akoya", Slug: "opera-length-akoya",
		Price: 4500, Category: "Necklaces", Stock: 3,
		Description: "An opera-length Akoya strand that can be doubled or knotted, endlessly versatile.",
		Images:      []string{"/images/products/opera-length-akoya-1.jpg", "/images/products/opera-length-akoya-2.jpg"},
		Colors:      []string{"White", "Cream"},
		Metadata:    ProductMetadata{PearlType: "Akoya", Length: "30 inch", Grade: "AAA"},
	},
	{
		ID: "p-011", Name: "Champagne South Sea Studs", Slug: "champagne-south-sea-studs",
		Price: 1800, Category: "Earrings", Stock: 6,
		Description: "Warm champagne South Sea pearls in a minimal yellow gold stud setting.",
		Images:      []string{"/images/products/champagne-south-sea-studs-1.jpg", "/images/products/champagne-south-sea-studs-2.jpg"},
		Colors:      []string{"Cream", "Gold"},
		Metadata:    ProductMetadata{PearlType: "South Sea", Length: "N/A", Grade: "AAA"},
	},
	{
		ID: "p-012", Name: "Midnight Pearl Pendant", Slug: "midnight-pearl-pendant",
		Price: 950, Category: "Necklaces", Stock: 10,
		Description: "A solitary Tahitian pearl on a fine white gold chain, dark and luminous.",
		Images:      []string{"/images/products/midnight-pearl-pendant-1.jpg", "/images/products/midnight-pearl-pendant-2.jpg"},
		Colors:      []string{"Black"},
		Metadata:    ProductMetadata{PearlType: "Tahitian", Length: "18 inch", Grade: "AA+"},
	},
	{
		ID: "p-013", Name: "Double Strand Bracelet", Slug: "double-strand-bracelet",
		Price: 1500, Category: "Bracelets", Stock: 4,
		Description: "Two rows of Akoya pearls joined by a pavé clasp, classic with a twist.",
		Images:      []string{"/images/products/double-strand-bracelet-1.jpg", "/images/products/double-strand-bracelet-2.jpg"},
		Colors:      []string{"White"},
		Metadata:    ProductMetadata{PearlType: "Akoya", Length: "7 inch", Grade: "AAA"},
	},
	{
		ID: "p-014", Name: "Royal Halo Ring", Slug: "royal-halo-ring",
		Price: 15000, Category: "Rings", Stock: 1,
		Description: "A 14mm Golden South Sea pearl encircled by double diamond halos, a collector's piece.",
		Images:      []string{"/images/products/royal-halo-ring-1.jpg", "/images/products/royal-halo-ring-2.jpg"},
		Colors:      []string{"Gold"},
		Metadata:    ProductMetadata{PearlType: "South Sea", Length: "N/A", Grade: "AAA"},
	},
	{
		ID: "p-015", Name: "Multicolor Rope Necklace", Slug: "multicolor-rope-necklace",
		Price: 1200, Category: "Necklaces", Stock: 5,
		Description: "A rope of multicolor freshwater pearls, wearable long, doubled, or knotted.",
		Images:      []string{"/images/products/multicolor-rope-necklace-1.jpg", "/images/products/multicolor-rope-necklace-2.jpg"},
		Colors:      []string{"Multicolor"},
		Metadata:    ProductMetadata{PearlType: "Freshwater", Length: "36 inch", Grade: "AA"},
	},
	{
		ID: "p-016", Name: "Tahitian Studs", Slug: "tahitian-studs",
		Price: 800, Category: "Earrings", Stock: 10,
		Description: "Round Tahitian pearls with green overtones in white gold studs.",
		Images:      []string{"/images/products/tahitian-studs-1.jpg", "/images/products/tahitian-studs-2.jpg"},
		Colors:      []string{"Black"},
		Metadata:    ProductMetadata{PearlType: "Tahitian", Length: "N/A", Grade: "AAA"},
	},
	{
		ID: "p-017", Name: "Bridal Akoya Set", Slug: "bridal-akoya-set",
		Price: 8500, Category: "Necklaces", Stock: 2,
		Description: "A matched strand and stud set of top-grade Akoya pearls for the aisle and after.",
		Images:      []string{"/images/products/bridal-akoya-set-1.jpg", "/images/products/bridal-akoya-set-2.jpg"},
		Colors:      []string{"White"},
		Metadata:    ProductMetadata{PearlType: "Akoya", Length: "18 inch", Grade: "AAA"},
	},
	{
		ID: "p-018", Name: "Golden Harvest Ring", Slug: "golden-harvest-ring",
		Price: 5500, Category: "Rings", Stock: 3,
		Description: "A deep golden South Sea pearl in a sculptural, brushed gold band.",
		Images:      []string{"/images/products/golden-harvest-ring-1.jpg", "/images/products/golden-harvest-ring-2.jpg"},
		Colors:      []string{"Gold"},
		Metadata:    ProductMetadata{PearlType: "South Sea", Length: "N/A", Grade: "AA+"},
	},
	{
		ID: "p-019", Name: "Petite Drop Pendant", Slug: "petite-drop-pendant",
		Price: 600, Category: "Necklaces", Stock: 20,
		Description: "A petite freshwater drop pearl on a delicate chain, made for layering.",
		Images:      []string{"/images/products/petite-drop-pendant-1.jpg", "/images/products/petite-drop-pendant-2.jpg"},
		Colors:      []string{"White", "Cream"},
		Metadata:    ProductMetadata{PearlType: "Freshwater", Length: "16 inch", Grade: "AAA"},
	},
	{
		ID: "p-020", Name: "Luxury South Sea Strand", Slug: "luxury-south-sea-strand",
		Price: 95000, Category: "Necklaces", Stock: 1,
		Description: "The house masterpiece: a perfectly matched strand of 15mm white South Sea pearls.",
		Images:      []string{"/images/products/luxury-south-sea-strand-1.jpg", "/images/products/luxury-south-sea-strand-2.jpg"},
		Colors:      []string{"White"},
		Metadata:    ProductMetadata{PearlType: "South Sea", Length: "20 inch", Grade: "AAA"},
	},
}

var seedCategories = []Category{
	{
		ID: "necklaces", Title: "Necklaces",
		Image:       "/images/categories/necklaces.jpg",
		Description: "Timeless strands and pendants, hand-selected for radiant orient and roundness.",
	},
	{
		ID: "earrings", Title: "Earrings",
		Image:       "/images/categories/earrings.jpg",
		Description: "Studs and drops that frame the face with a subtle pearlescent glow.",
	},
	{
		ID: "rings", Title: "Rings",
		Image:       "/images/categories/rings.jpg",
		Description: "Statement pieces showcasing exceptional pearls in modern settings.",
	},
	{
		ID: "bracelets", Title: "Bracelets",
		Image:       "/images/categories/bracelets.jpg",
		Description: "Strands and bangles that add refined luxury to the wrist.",
	},
}
