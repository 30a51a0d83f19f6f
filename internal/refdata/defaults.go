package refdata

// Defaults returns the built-in NSE reference tables. Symbol coverage is a
// working subset of the index universe; symbols outside these tables fall
// back to "Other" / small cap.
func Defaults() ReferenceData {
	return ReferenceData{
		Sectors: map[string]string{
			"HDFCBANK":   "Banking",
			"ICICIBANK":  "Banking",
			"SBIN":       "Banking",
			"KOTAKBANK":  "Banking",
			"AXISBANK":   "Banking",
			"INDUSINDBK": "Banking",
			"FEDERALBNK": "Banking",

			"BAJFINANCE":  "Financial Services",
			"BAJAJFINSV":  "Financial Services",
			"HDFCLIFE":    "Financial Services",
			"SBILIFE":     "Financial Services",
			"CHOLAFIN":    "Financial Services",
			"MUTHOOTFIN":  "Financial Services",
			"LICHSGFIN":   "Financial Services",
			"SHRIRAMFIN":  "Financial Services",

			"TCS":        "IT",
			"INFY":       "IT",
			"WIPRO":      "IT",
			"HCLTECH":    "IT",
			"TECHM":      "IT",
			"LTIM":       "IT",
			"COFORGE":    "IT",
			"PERSISTENT": "IT",

			"HINDUNILVR": "FMCG",
			"ITC":        "FMCG",
			"NESTLEIND":  "FMCG",
			"BRITANNIA":  "FMCG",
			"DABUR":      "FMCG",
			"MARICO":     "FMCG",
			"GODREJCP":   "FMCG",

			"MARUTI":     "Auto",
			"TATAMOTORS": "Auto",
			"M&M":        "Auto",
			"BAJAJ-AUTO": "Auto",
			"EICHERMOT":  "Auto",
			"HEROMOTOCO": "Auto",
			"TVSMOTOR":   "Auto",

			"SUNPHARMA":  "Pharma",
			"DRREDDY":    "Pharma",
			"CIPLA":      "Pharma",
			"DIVISLAB":   "Pharma",
			"LUPIN":      "Pharma",
			"AUROPHARMA": "Pharma",

			"RELIANCE": "Energy",
			"ONGC":     "Energy",
			"NTPC":     "Energy",
			"POWERGRID": "Energy",
			"BPCL":     "Energy",
			"IOC":      "Energy",
			"COALINDIA": "Energy",
			"ADANIGREEN": "Energy",

			"TATASTEEL":  "Metals",
			"JSWSTEEL":   "Metals",
			"HINDALCO":   "Metals",
			"VEDL":       "Metals",
			"NMDC":       "Metals",
			"SAIL":       "Metals",

			"LT":         "Infrastructure",
			"ADANIPORTS": "Infrastructure",
			"ADANIENT":   "Infrastructure",
			"ULTRACEMCO": "Cement",
			"SHREECEM":   "Cement",
			"AMBUJACEM":  "Cement",
			"GRASIM":     "Cement",

			"BHARTIARTL": "Telecom",
			"IDEA":       "Telecom",

			"PIDILITIND": "Chemicals",
			"SRF":        "Chemicals",
			"AARTIIND":   "Chemicals",

			"TITAN":   "Consumer Durables",
			"VOLTAS":  "Consumer Durables",
			"HAVELLS": "Consumer Durables",

			"DMART":   "Retail",
			"TRENT":   "Retail",
			"ZOMATO":  "Retail",
		},
		Categories: map[string]string{
			"RELIANCE":   CategoryLargeCap,
			"TCS":        CategoryLargeCap,
			"HDFCBANK":   CategoryLargeCap,
			"INFY":       CategoryLargeCap,
			"ICICIBANK":  CategoryLargeCap,
			"HINDUNILVR": CategoryLargeCap,
			"ITC":        CategoryLargeCap,
			"SBIN":       CategoryLargeCap,
			"BHARTIARTL": CategoryLargeCap,
			"KOTAKBANK":  CategoryLargeCap,
			"LT":         CategoryLargeCap,
			"AXISBANK":   CategoryLargeCap,
			"MARUTI":     CategoryLargeCap,
			"SUNPHARMA":  CategoryLargeCap,
			"TITAN":      CategoryLargeCap,
			"BAJFINANCE": CategoryLargeCap,
			"NESTLEIND":  CategoryLargeCap,
			"WIPRO":      CategoryLargeCap,
			"HCLTECH":    CategoryLargeCap,
			"ULTRACEMCO": CategoryLargeCap,
			"NTPC":       CategoryLargeCap,
			"POWERGRID":  CategoryLargeCap,
			"M&M":        CategoryLargeCap,
			"TATAMOTORS": CategoryLargeCap,
			"TATASTEEL":  CategoryLargeCap,
			"ONGC":       CategoryLargeCap,
			"COALINDIA":  CategoryLargeCap,
			"ADANIPORTS": CategoryLargeCap,
			"BAJAJFINSV": CategoryLargeCap,
			"DMART":      CategoryLargeCap,

			"TECHM":      CategoryMidCap,
			"LTIM":       CategoryMidCap,
			"DRREDDY":    CategoryMidCap,
			"CIPLA":      CategoryMidCap,
			"DIVISLAB":   CategoryMidCap,
			"EICHERMOT":  CategoryMidCap,
			"HEROMOTOCO": CategoryMidCap,
			"TVSMOTOR":   CategoryMidCap,
			"JSWSTEEL":   CategoryMidCap,
			"HINDALCO":   CategoryMidCap,
			"VEDL":       CategoryMidCap,
			"BPCL":       CategoryMidCap,
			"IOC":        CategoryMidCap,
			"BRITANNIA":  CategoryMidCap,
			"DABUR":      CategoryMidCap,
			"MARICO":     CategoryMidCap,
			"GODREJCP":   CategoryMidCap,
			"HDFCLIFE":   CategoryMidCap,
			"SBILIFE":    CategoryMidCap,
			"SHRIRAMFIN": CategoryMidCap,
			"ADANIENT":   CategoryMidCap,
			"ADANIGREEN": CategoryMidCap,
			"SHREECEM":   CategoryMidCap,
			"AMBUJACEM":  CategoryMidCap,
			"GRASIM":     CategoryMidCap,
			"PIDILITIND": CategoryMidCap,
			"SRF":        CategoryMidCap,
			"VOLTAS":     CategoryMidCap,
			"HAVELLS":    CategoryMidCap,
			"TRENT":      CategoryMidCap,
			"INDUSINDBK": CategoryMidCap,
			"LUPIN":      CategoryMidCap,
			"AUROPHARMA": CategoryMidCap,
			"CHOLAFIN":   CategoryMidCap,
			"MUTHOOTFIN": CategoryMidCap,
			"ZOMATO":     CategoryMidCap,

			"FEDERALBNK": CategorySmallCap,
			"LICHSGFIN":  CategorySmallCap,
			"NMDC":       CategorySmallCap,
			"SAIL":       CategorySmallCap,
			"IDEA":       CategorySmallCap,
			"AARTIIND":   CategorySmallCap,
			"COFORGE":    CategorySmallCap,
			"PERSISTENT": CategorySmallCap,
		},
		QualitySymbols: map[string]bool{
			"RELIANCE":   true,
			"TCS":        true,
			"HDFCBANK":   true,
			"INFY":       true,
			"ICICIBANK":  true,
			"HINDUNILVR": true,
			"ITC":        true,
			"NESTLEIND":  true,
			"KOTAKBANK":  true,
			"LT":         true,
			"MARUTI":     true,
			"TITAN":      true,
			"SUNPHARMA":  true,
			"BAJFINANCE": true,
			"ULTRACEMCO": true,
			"BRITANNIA":  true,
			"PIDILITIND": true,
		},
		BusinessGroups: map[string][]string{
			"Tata":     {"TCS", "TATAMOTORS", "TATASTEEL", "TITAN", "TRENT"},
			"Adani":    {"ADANIENT", "ADANIPORTS", "ADANIGREEN", "AMBUJACEM"},
			"Bajaj":    {"BAJFINANCE", "BAJAJFINSV", "BAJAJ-AUTO"},
			"Aditya Birla": {"ULTRACEMCO", "GRASIM", "HINDALCO"},
			"Mahindra": {"M&M", "TECHM"},
			"Reliance": {"RELIANCE"},
			"Godrej":   {"GODREJCP"},
		},
		MacroBuckets: map[string][]string{
			BucketBanking: {
				"HDFCBANK", "ICICIBANK", "SBIN", "KOTAKBANK", "AXISBANK",
				"INDUSINDBK", "FEDERALBNK",
			},
			BucketNBFC: {
				"BAJFINANCE", "BAJAJFINSV", "CHOLAFIN", "MUTHOOTFIN",
				"LICHSGFIN", "SHRIRAMFIN",
			},
			BucketCommodity: {
				"TATASTEEL", "JSWSTEEL", "HINDALCO", "VEDL", "NMDC", "SAIL",
				"ONGC", "COALINDIA",
			},
			BucketExport: {
				"TCS", "INFY", "WIPRO", "HCLTECH", "TECHM", "LTIM",
				"SUNPHARMA", "DRREDDY", "CIPLA", "DIVISLAB", "LUPIN",
				"AUROPHARMA",
			},
		},
		BenchmarkSectorWeights: map[string]float64{
			"Banking":            26.0,
			"IT":                 13.5,
			"Energy":             12.0,
			"Financial Services": 9.0,
			"FMCG":               8.0,
			"Auto":               7.0,
			"Pharma":             5.0,
			"Metals":             4.0,
			"Infrastructure":     4.0,
			"Telecom":            3.5,
			"Cement":             2.5,
			"Consumer Durables":  2.5,
			"Retail":             1.5,
			"Chemicals":          1.5,
		},
		Alternatives: map[string][]string{
			"Banking":            {"HDFCBANK", "ICICIBANK", "KOTAKBANK", "AXISBANK"},
			"Financial Services": {"BAJFINANCE", "HDFCLIFE", "SBILIFE", "CHOLAFIN"},
			"IT":                 {"TCS", "INFY", "HCLTECH", "LTIM"},
			"FMCG":               {"HINDUNILVR", "NESTLEIND", "BRITANNIA", "ITC"},
			"Auto":               {"MARUTI", "M&M", "EICHERMOT", "TVSMOTOR"},
			"Pharma":             {"SUNPHARMA", "CIPLA", "DRREDDY", "DIVISLAB"},
			"Energy":             {"RELIANCE", "NTPC", "POWERGRID", "COALINDIA"},
			"Metals":             {"TATASTEEL", "JSWSTEEL", "HINDALCO"},
			"Infrastructure":     {"LT", "ADANIPORTS"},
			"Cement":             {"ULTRACEMCO", "GRASIM", "AMBUJACEM"},
			"Telecom":            {"BHARTIARTL"},
			"Chemicals":          {"PIDILITIND", "SRF"},
			"Consumer Durables":  {"TITAN", "HAVELLS", "VOLTAS"},
			"Retail":             {"DMART", "TRENT"},
		},
	}
}
