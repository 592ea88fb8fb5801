package config

import "github.com/shopspring/decimal"

// DefaultConfig returns the code-default configuration layer: the household's
// full keyword data set. The seed and live-override files merge on top of it.
// Category scan order is significant (Income first, then the authored order),
// so everything here is built as ordered slices.
func DefaultConfig() EffectiveConfig {
	return EffectiveConfig{
		CategoryKeywords:          defaultCategoryKeywords(),
		SubcategoryMaps:           defaultSubcategoryMaps(),
		SubSubcategoryMaps:        defaultSubSubcategoryMaps(),
		SubSubSubcategoryMaps:     defaultSubSubSubcategoryMaps(),
		CustomTransactionKeywords: defaultCustomTransactionKeywords(),
		OmitKeywords:              []string{"GALLERY HEMP"},
		AmountOmitRules:           nil,
		ReturnKeywords:            []string{"RETURN", "REFUND"},
		TransferKeywords:          []string{"ROBINHOOD", "INTERNAL TRANSFER", "ACH TRANSFER", "TRANSFER"},
		StrictBoundaryKeywords:    []string{"ACE", "GAS"},
		// Camera spend is tracked in the tree but never counts toward the
		// headline totals. Overrides can hide more categories; they cannot
		// unhide this one.
		HiddenCategories: []string{"Camera"},
		CategoryCaps: []CategoryCap{
			{Category: "Venmo", ExactAbs: decimal.NewFromInt(200)},
			{Category: "Credit Card", MaxAbs: decimal.NewFromInt(300)},
		},
	}
}

func defaultCategoryKeywords() []CategoryKeywords {
	return []CategoryKeywords{
		{"Income", []string{"ACH CREDIT", "HOLLYWOOD RTP", "RTP CREDIT", "INTEREST PAYMENT", "PR PAYMENT", "MOBILE DEPOSIT", "METZ"}},
		{"Fees", []string{"FEE", "SARASOTA CNTY LIBR"}},
		{"Camera", []string{"BEST BUY", "AMAZON MKTPL*NA09L", "421739594945978", "BEST BUY 00005629 06-20-25 SARASOTA FL 8834"}},
		{"Costco (repaid)", []string{"ANNUAL REN"}},
		{"Phone", []string{"STRAIGHTTALK", "JLPHONE", "VERIZON"}},
		{"Rent/Utilities", []string{"2500.00", "FPL", "FRONTIER", "COMCAST", "WATER", "ELECTRIC", "UTILIT", "SARASOTA COUNTY PU"}},
		{"Eating Out", []string{"WHITE HOUSE P", "GOLLY G'S", "FIREHOUSE SUBS", "PIZZA HUT", "PUBLIC HOUSE", "QUIZNOS", "MAIN STREET CR", "P.F. CHANG'S", "FIVE GUYS", "400 DEGREE", "CASA VIEJA", "JERSEY MIKE'S", "MAS TACOS", "MELLOW MUSHROOM", "ROCCOS", "CAROUSEL'S", "ORIGIN", "STARBUCKS", "GECKOS", "TACO BELL", "MCDONALD'S", "CHICKFIL", "JERSEY MIKES"}},
		{"Subscriptions", []string{"ADOBE", "AMAZON PRIME", "AMZNFREETIME*NL60S", "AMZNFREETIME*N614Y", "SAMS CLUB RENEWAL", "OPENAI", "MICROSOFT*ULTIMATE", "PRIME VIDEO", "SPOTIFY", "YOUTUBE TV", "NETFLIX", "PELOTON"}},
		{"Online Shopping", []string{"EBAY", "SHOPIFY", "WALGREENS", "AMAZON"}},
		{"Transfers", []string{"TRANSFER"}},
		{"Vehicles", []string{"BP#", "DT RETAIL", "STATE FARM", "LOVE'S", "CHEVRON", "AMOCO#", "BP#6189385PHILL", "SHELL", "EXXONMOBIL", "CIRCLE K", "GAS", "TEXACO", "7-ELEVEN", "VIOC", "JIFFY LUBE", "MEINEKE", "CAR WASH", "MR. CLEAN", "WASH", "SPARKLE", "ADVANCE AUTO", "AUTOZONE", "SARASOTA PARK METE"}},
		{"Clothes", []string{"ABERCROMBIE", "GOODWILL", "MISSION THRIFT", "HM.COM", "PLATOS", "ONCE UPON", "MARSHALLS"}},
		{"Withdrawals", []string{"ATM", "CASH", "WITHDRAWL"}},
		{"Written Checks", []string{"CHECK"}},
		{"Venmo", []string{"VENMO"}},
		{"Groceries/Home", []string{"HOBBYLOBB", "WM", "ACE", "DOLLARTRE", "DOLLAR GENERAL", "FIVE BELO", "COSTCO", "TRADER JOE", "ALDI", "WORLDMARKET", "#403", "TARGET", "PUBLIX", "WALMART", "SAMS", "SAM'S", "SAMSCLUB"}},
		{"Medical", []string{"BAYVIEW DENTALCLA", "CHEEKY", "KORPATH", "ALMA", "RX", "ODONOGHUE", "CVS", "1800 CONTACTS", "CVS/PHARMACY", "PRIMEHEALTH", "RADIOLOG"}},
		{"Credit Card", []string{"CITI", "CAPITAL ONE", "BK OF AMER"}},
		{"Flight", []string{"SRQ SARASOTA TO GO", "AIR", "BNA", "CHARLOTTE COUNTY", "SARASOTA A", "SRQ"}},
		{"Entertainment", []string{"NAYAX", "SKY ZONE"}},
		{"Cosmetic", []string{"LUSH", "HAPPY NAI", "MANATEE TECHNICAL", "CHRISTOPHER TR"}},
		{"Kids", []string{"JANSPORT", "MISS SARASOTA", "STAGE DOOR", "PHOTODAY", "GIV*CHURCH"}},
		{"Animal", []string{"DIANE'S", "ROOT", "ANIMAL", "PETCO", "ANIMA", "SARASOTA VETERINAR", "SARASOTA COANIMAL", "ASHTON ANIMAL CLIN", "PAWFEC"}},
		{"Bet", []string{"VIATRUSTLY"}},
		{"Golf", []string{"BENTT"}},
		{"Shipping/Moving", []string{"USPS", "UPS", "FEDEX", "UHAUL"}},
		{"Miscellaneous", []string{}},
	}
}

func defaultSubcategoryMaps() map[string][]LabelKeywords {
	return map[string][]LabelKeywords{
		"Online Shopping": {
			{"Amazon", []string{"WWW.AMAZON.CO", "AMZN.COM/BILL"}},
			{"eBay", []string{"EBAY"}},
		},
		"Vehicles": {
			{"Tundra", []string{"BRIDGECREST"}},
			{"Insurance", []string{"STATE FARM"}},
			{"Gas", []string{"LOVE'S", "BP#", "CHEVRON", "AMOCO#", "BP#6189385PHILL", "SHELL", "EXXONMOBIL", "CIRCLE K", "GAS", "TEXACO", "7-ELEVEN"}},
			{"Oil/Service", []string{"VIOC", "JIFFY LUBE", "MEINEKE"}},
			{"Car Wash", []string{"CAR WASH", "MR. CLEAN", "WASH", "SPARKLE"}},
			{"Parts", []string{"ADVANCE AUTO", "AUTOZONE"}},
			{"Parking", []string{"SARASOTA PARK METE"}},
		},
		"Phone": {
			{"Straight Talk", []string{"STRAIGHTTALK"}},
			{"Oona", []string{"VERIZON"}},
			{"JL New Phone", []string{"WALMART", "212.93"}},
		},
		"Bet": {
			{"Hard Rock App", []string{"VIATRUSTLY"}},
		},
		"Cosmetic": {
			{"JL Haircut", []string{"CHRISTOPHER TR"}},
			{"Nail Salon", []string{"HAPPY NAI", "NAIL SALON"}},
			{"Lush", []string{"LUSH"}},
			{"Rachel Haircut", []string{"MANATEE TECHNICAL"}},
		},
		"Fees": {
			{"Bank Fees", []string{"BANK FEE", "ATM FEE", "LIMIT FEE", "OVERDRAFT FEE", "SERVICE FEE"}},
			{"Service Fees", []string{"SERVICE FEE", "LATE FEE"}},
			{"Traffic Ticket", []string{"CHECK #1054"}},
			{"Library Fees", []string{"SARASOTA CNTY LIBR"}},
		},
		"Entertainment": {
			{"Sky Zone", []string{"SKY ZONE"}},
			{"Photo Booth", []string{"NAYAX"}},
		},
		"Clothes": {
			{"Thrift Stores", []string{"GOODWILL", "MISSION THRIFT", "ONCE UPON A CHILD", "PLATOS CLOSET"}},
			{"Retail Stores", []string{"ABERCROMBIE", "HM.COM", "MARSHALLS"}},
		},
		"Kids": {
			{"Oona", []string{"MISS SARASOTA", "SARASOTA SOFTBALL", "JANSPORT"}},
			{"Ivy", []string{"STAGE DOOR", "DANCE", "PHOTODAY CREDIT", "PHOTODAY ORDER"}},
			{"VBS", []string{"GIV*CHURCH"}},
		},
		"Income": {
			{"JL Pay", []string{"METZ", "MOBILE DEPOSIT", "TIP"}},
			{"Rachel Pay", []string{"PR PAYMENT"}},
			{"Interest", []string{"INTEREST PAYMENT"}},
			{"Gambling Winnings", []string{"HOLLYWOOD RTP"}},
		},
		"Groceries/Home": {
			{"Box Stores", []string{"WALMART", "WM SUPERC", "PUBLIX", "COSTCO", "TRADER JOE", "TARGET", "ALDI", "SAMS CLUB", "SAMSCLUB", "SAM'S CLUB"}},
			{"Housing Stores", []string{"WORLDMARKET"}},
			{"Dollar Stores", []string{"DOLLAR GENERAL", "FIVE BELO", "DOLLAR TREE", "#403", "DOLLARTRE"}},
			{"Home Improvement", []string{"ACE", "ACE HARDWARE", "HOME DEPOT", "LOWE'S"}},
			{"Craft Stores", []string{"HOBBYLOBB", "MICHAELS", "JOANN"}},
		},
		"Eating Out": {
			{"Fast Food", []string{"FIREHOUSE SUBS", "QUIZNOS", "FIVE GUYS", "PIZZA HUT", "TACO BELL", "MCDONALD", "BURGER KING", "WENDY", "CHICKFIL", "POPEYES", "SONIC", "ZAXBY", "JERSEY MIKE", "JERSEY MIKES"}},
			{"Sit-Down", []string{"WHITE HOUSE P", "MAS TACOS", "P.F. CHANG", "MELLOW MUSHROOM", "GECKOS", "400 DEGREE", "ROCCOS", "CASA VIEJA", "ORIGIN"}},
			{"Coffee", []string{"STARBUCKS", "DUNKIN", "COFFEE", "JAVA", "CAFE"}},
			{"Mom's Celebration Food", []string{"PUBLIC HOUSE"}},
			{"Ice Cream", []string{"MAIN STREET", "CAROUSEL'S", "GOLLY G'S", "ICE CREAM", "FROZEN YOGURT", "SCOOPS", "COLD STONE", "BRUSTER'S"}},
		},
		"Medical": {
			{"Dental", []string{"BAYVIEW DENTALCLA", "CHEEKY"}},
			{"Pharmacy", []string{"CVS", "CVS/PHARMACY"}},
			{"DR/Lab", []string{"KORPATH", "PRIMEHEALTH", "RADIOLOG"}},
			{"Therapy", []string{"ALMA"}},
			{"Vision", []string{"VISION", "CONTACTS"}},
			{"Dermatology", []string{"ODONOGHUE", "DERMATOL"}},
			{"Miscellaneous", []string{}},
		},
		"Rent/Utilities": {
			{"Rent", []string{"CHECK"}},
			{"Electric", []string{"DUKE", "FPL", "POWER", "ELECTRIC", "ELECTRICITY", "ENERGY"}},
			{"Water", []string{"PAYMENTUS.COM", "SARASOTA COUNTY PU"}},
			{"Gas Utility", []string{"GAS COMPANY", "NATURAL GAS", "TECO", "PEOPLES GAS"}},
			{"Internet", []string{"SPECTRUM", "COMCAST", "XFINITY", "INTERNET", "AT&T"}},
			{"Trash", []string{"TRASH", "WASTE", "RECYCLING", "SANITATION"}},
			{"HOA Fees", []string{"HOA", "HOMEOWNERS ASSOC"}},
		},
		"Subscriptions": {
			{"Adobe", []string{"ADOBE"}},
			{"Streaming Services", []string{"NETFLIX", "HULU", "DISNEY", "MAX", "HBOMAX", "PEACOCK", "PARAMOUNT", "YOUTUBE", "APPLE TV"}},
			{"Spotify", []string{"SPOTIFY"}},
			{"Apps & Software", []string{"ADOBE", "EVERNOTE", "DROPBOX"}},
			{"Sam's", []string{"SAMS CLUB", "SAMSCLUB"}},
			{"News & Publications", []string{"NYTIMES", "WSJ", "SUBSTACK", "REDDIT PREMIUM", "MEDIUM"}},
			{"Cloud Storage", []string{"ICLOUD", "GOOGLE STORAGE", "ONEDRIVE", "DROPBOX"}},
			{"Peloton", []string{"PELOTON"}},
			{"ChatGPT", []string{"OPENAI", "CHATGPT", "GPT-4", "GPT-3.5"}},
			{"Xbox GamePass", []string{"MICROSOFT*ULTIMATE"}},
			{"Prime Video", []string{"PRIME VIDEO", "AMAZON VIDEO"}},
			{"Fire Tablet", []string{"AMZNFREETIME*NL60S", "AMZNFREETIME*N614Y", "0605", "AMZNFREETIME"}},
			{"Amazon Prime", []string{"AMAZON PRIME"}},
		},
		"Flight": {
			{"Baggage/Fees", []string{"BAG", "BAGGAGE", "FEE", "07-19 NV 6466"}},
			{"Airfare", []string{"ALLEGNT", "DELTA", "AMERICAN AIRLINES", "UNITED", "SOUTHWEST", "FRONTIER", "SPIRIT", "JETBLUE", "SUN COUNTRY", "HAWAIIAN", "ALASKA"}},
			{"Parking", []string{"PARKING", "AIRPORT PARK", "CHARLOTTE COUNTY", "BNA PARKING", "SARASOTA A"}},
			{"Food", []string{"GULCH GOODS", "SRQ SEASIDE", "SRQ SARASOTA TO GO"}},
		},
		"Withdrawals": {
			{"JL", []string{"8842", "3453"}},
			{"Rachel", []string{"6466"}},
		},
		"Credit Card": {
			{"Rachel CC", []string{"CITI", "CITIBANK", "CITI CARD", "BK OF AMER", "BANK OF AMERICA", "CHASE", "JPMORGAN"}},
			{"JL CC", []string{"CAPITAL ONE", "CAP ONE", "CAP1"}},
		},
		"Animal": {
			{"Rosie", []string{"ROOT", "VET", "VETERINARY", "SARASOTA VETERINAR", "DIANE'S", "PAWFEC"}},
			{"Pet Food", []string{"DOG FOOD", "PET FOOD", "PURINA", "BLUE BUFFALO", "NUTRO", "CHEWY"}},
			{"Pet Stores", []string{"PETCO", "PETSMART", "LEASH", "TOY", "TREAT", "BOWL", "KENNEL", "BED"}},
			{"Grooming", []string{"GROOM", "BATH", "NAIL TRIM", "CLIPPERS"}},
			{"Jack", []string{"FOREST LAKES"}},
			{"Pet Sitting", []string{"VENMO"}},
			{"Stormy", []string{"SARASOTA COANIMAL", "ASHTON ANIMAL CLIN"}},
		},
		"Shipping/Moving": {
			{"USPS", []string{"USPS", "POST OFFICE", "UNITED STATES POSTAL SERVICE"}},
			{"UPS", []string{"UPS", "UNITED PARCEL SERVICE"}},
			{"FedEx", []string{"FEDEX", "FEDERAL EXPRESS"}},
			{"U-Haul", []string{"UHAUL", "U-HAUL"}},
		},
		"Golf": {
			{"Bent Tree CC", []string{"BENTTREEGOLFCL", "GLF*BENTT"}},
		},
	}
}

func defaultSubSubcategoryMaps() map[string]map[string][]LabelKeywords {
	return map[string]map[string][]LabelKeywords{
		"Eating Out": {
			"Fast Food": {
				{"McDonald's", []string{"MCDONALD", "MCDONALD'S"}},
				{"Chick-fil-A", []string{"CHICKFIL", "CHICK-FIL-A"}},
				{"Wendy's", []string{"WENDY", "WENDY'S"}},
				{"Burger King", []string{"BURGER KING"}},
				{"Taco Bell", []string{"TACO BELL"}},
				{"Firehouse Subs", []string{"FIREHOUSE SUBS"}},
				{"Pizza Hut", []string{"PIZZA HUT"}},
				{"Subway", []string{"SUBWAY"}},
				{"Quiznos", []string{"QUIZNOS"}},
				{"Five Guys", []string{"FIVE GUYS"}},
				{"Jersey Mike's", []string{"JERSEY MIKE'S", "JERSEY MIKES"}},
				{"Other Fast Food", []string{}},
			},
			"Coffee": {
				{"Starbucks", []string{"STARBUCKS"}},
				{"Dunkin'", []string{"DUNKIN"}},
				{"Peet's Coffee", []string{"PEETS"}},
				{"Caribou Coffee", []string{"CARIBOU"}},
				{"Other Coffee", []string{}},
			},
			"Sit-Down": {
				{"P.F. Chang's", []string{"P.F. CHANG'S"}},
				{"Mellow Mushroom", []string{"MELLOW MUSHROOM"}},
				{"Gecko's", []string{"GECKOS", "WWW.GECKOS*", "WWW.GECKOS* GECKOS"}},
				{"Main Street", []string{"MAIN STREET"}},
				{"400 Degree", []string{"400 DEGREE"}},
				{"Rocco's Tacos", []string{"ROCCO'S TACOS", "TEQ"}},
				{"Casa Vieja", []string{"CASA VIEJA"}},
				{"Origin", []string{"ORIGIN"}},
				{"White House Pizza & Pub", []string{"WHITE HOUSE P"}},
				{"Mas Tacos", []string{"MAS TACOS"}},
			},
			"Ice Cream": {
				{"Carousel's", []string{"CAROUSEL'S"}},
				{"Golly G's", []string{"GOLLY G'S", "GOLLY", "GOLLY G'S ICE CREAM"}},
				{"Main Street Creamery", []string{"MAIN STREET CR"}},
			},
		},
		"Vehicles": {
			"Oil/Service": {
				{"Valvoline", []string{"VIOC"}},
			},
			"Parts": {
				{"Advance Auto Parts", []string{"ADVANCE AUTO"}},
			},
			"Insurance": {
				{"State Farm", []string{"STATE FARM"}},
			},
			"Tundra": {
				{"Bridgecrest", []string{"BRIDGECREST"}},
			},
			"Gas": {
				{"BP", []string{"BP#"}},
				{"Shell", []string{"SHELL"}},
				{"Mcintosh Market", []string{"BURT'S"}},
				{"Circle K", []string{"CIRCLE K"}},
				{"Exxon", []string{"EXXONMOBIL"}},
				{"Chevron", []string{"CHEVRON"}},
				{"Amoco", []string{"AMOCO#"}},
				{"7-Eleven", []string{"7-ELEVEN"}},
				{"Love's", []string{"LOVE'S"}},
			},
		},
		"Animal": {
			"Pet Stores": {
				{"Petco", []string{"PETCO"}},
				{"Petsmart", []string{"PETSMART"}},
				{"Leash", []string{"LEASH"}},
				{"Toy", []string{"TOY"}},
				{"Treat", []string{"TREAT"}},
				{"Bowl", []string{"BOWL"}},
				{"Kennel", []string{"KENNEL"}},
				{"Bed", []string{"BED"}},
			},
			"Stormy": {
				{"Stormy Vet", []string{"SARASOTA COANIMAL", "ASHTON ANIMAL CLIN"}},
			},
			"Jack": {
				{"Jack Vet", []string{"FOREST LAKES"}},
			},
			"Rosie": {
				{"Rosie Vet", []string{"ROOT", "VET", "VETERINARY"}},
				{"Rosie Cut", []string{"DIANE'S", "PAWFEC"}},
			},
		},
		"Kids": {
			"Oona": {
				{"Softball", []string{"MISS SARASOTA", "SARASOTA SOFTBALL"}},
				{"School", []string{"JANSPORT"}},
			},
			"Ivy": {
				{"Dance", []string{"STAGE DOOR", "DANCE", "PHOTODAY CREDIT", "PHOTODAY ORDER"}},
			},
		},
		"Groceries/Home": {
			"Box Stores": {
				{"Walmart", []string{"WALMART", "WM SUPERC"}},
				{"Publix", []string{"PUBLIX"}},
				{"Costco", []string{"COSTCO"}},
				{"Trader Joe's", []string{"TRADER JOE"}},
				{"Target", []string{"TARGET"}},
				{"Aldi", []string{"ALDI"}},
				{"Sam's Club", []string{"SAMS CLUB", "SAMSCLUB", "SAM'S CLUB"}},
			},
			"Dollar Stores": {
				{"Dollar General", []string{"DOLLAR GENERAL"}},
				{"Five Below", []string{"FIVE BELO"}},
				{"Dollar Tree", []string{"DOLLAR TREE"}},
				{"#403", []string{"#403"}},
				{"Dollartree", []string{"DOLLARTRE"}},
			},
			"Craft Stores": {
				{"Hobby Lobby", []string{"HOBBYLOBB"}},
				{"Joann", []string{"JOANN"}},
				{"Michaels", []string{"MICHAELS"}},
			},
			"Home Improvement": {
				{"Home Depot", []string{"HOMEDEPOT"}},
				{"Lowe's", []string{"LOWES"}},
				{"Ace Hardware", []string{"ACE"}},
			},
			"Housing Stores": {
				{"World Market", []string{"WORLDMARKET"}},
			},
		},
		"Flight": {
			"Airfare": {
				{"Allegiant", []string{"ALLEGNT"}},
				{"Delta", []string{"DELTA"}},
				{"American Airlines", []string{"AMERICAN AIRLINES"}},
				{"United", []string{"UNITED"}},
				{"Southwest", []string{"SOUTHWEST"}},
				{"Frontier", []string{"FRONTIER"}},
				{"Spirit", []string{"SPIRIT"}},
				{"JetBlue", []string{"JETBLUE"}},
				{"Sun Country", []string{"SUN COUNTRY"}},
				{"Hawaiian", []string{"HAWAIIAN"}},
				{"Alaska", []string{"ALASKA"}},
			},
		},
		"Clothes": {
			"Thrift Stores": {
				{"Goodwill", []string{"GOODWILL"}},
				{"Plato's Closet", []string{"PLATOS CLOSET"}},
				{"Once Upon a Child", []string{"ONCE UPON A CHILD"}},
				{"Mission Thrift", []string{"MISSION THRIFT"}},
				{"Value Village", []string{"VALUE VILLAGE"}},
			},
			"Retail Stores": {
				{"Abercrombie", []string{"ABERCROMBIE"}},
				{"Marshalls", []string{"MARSHALLS"}},
				{"H&M", []string{"HM.COM"}},
			},
		},
		"Income": {
			"JL Pay": {
				{"Ringling", []string{"METZ"}},
				{"Element", []string{"MOBILE DEPOSIT"}},
				{"Cash Tips", []string{"TIP"}},
			},
			"Rachel Pay": {
				{"Paralon", []string{"PR PAYMENT"}},
				{"Photo Gig", []string{"PHOTO GIG"}},
			},
		},
		"Cosmetic": {
			"Nail Salon": {
				{"Sarasota Happy Nail", []string{"HAPPY NAI"}},
			},
			"JL Haircut": {
				{"Chris T", []string{"CHRISTOPHER TR"}},
			},
			"Rachel Haircut": {
				{"Natalie", []string{"MANATEE TECHNICAL"}},
			},
		},
		"Medical": {
			"Dental": {
				{"Cheeky", []string{"CHEEKY"}},
				{"Bayview Dental", []string{"BAYVIEW DENTALCLA"}},
			},
			"Vision": {
				{"1-800 Contacts", []string{"1800 CONTACTS", "VISION RX"}},
			},
			"Pharmacy": {
				{"CVS", []string{"CVS"}},
				{"Walgreens", []string{"WALGREENS"}},
			},
			"Dermatology": {
				{"Dr. O'Donoghue", []string{"DERMATOL"}},
			},
			"DR/Lab": {
				{"Co-Pays", []string{"KORPATH", "PRIMEHEALTH"}},
			},
			"Therapy": {
				{"Dr Schnyder", []string{"ALMA*"}},
			},
		},
		"Credit Card": {
			"Rachel CC": {
				{"CITI", []string{"CITI"}},
				{"Bank of America", []string{"BK OF AMER"}},
			},
			"JL CC": {
				{"Capital One", []string{"CAPITAL ONE"}},
			},
		},
		"Golf": {
			"Bent Tree CC": {
				{"Green Fees", []string{"REEGOLFCL"}},
				{"Pro Shop", []string{"GLF*BENTT"}},
			},
		},
		"Subscriptions": {
			"Streaming Services": {
				{"Netflix", []string{"NETFLIX"}},
				{"Hulu", []string{"HULU"}},
				{"Disney+", []string{"DISNEY+"}},
				{"Youtube TV", []string{"YOUTUBE TV"}},
			},
		},
	}
}

func defaultSubSubSubcategoryMaps() map[string]map[string]map[string][]LabelKeywords {
	return map[string]map[string]map[string][]LabelKeywords{
		"Income": {
			"JL Pay": {
				"Cash Tips": {
					{"Ringling Tips", []string{"RINGLING"}},
					{"Element Tips", []string{"ELEMENT", "TIP"}},
				},
			},
			"Rachel Pay": {
				"Photo Gig": {
					{"Wedding", []string{"WEDDING"}},
					{"Portrait", []string{"PORTRAIT"}},
				},
			},
		},
	}
}

func defaultCustomTransactionKeywords() map[string]CustomRule {
	return map[string]CustomRule{
		"VENMO - $200.0": {Category: "Animal", Subcategory: "Pet Sitting"},
	}
}
