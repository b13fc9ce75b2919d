package advisory

import "HarvestGuard/internal/model"

var bangla = Templates{
	Locale:           LocaleBangla,
	Tomorrow:         "আগামীকাল",
	DayAfterTomorrow: "পরশু দিন",
	Storage: map[model.StorageType]string{
		model.StorageSilo: "সাইলোে",
		model.StorageBag:  "গুদাম",
	},
	Standalone: "%s",

	RainAndHumidity:         "%[1]s বৃষ্টি হবে এবং আপনার %[2]s %[3]s আর্দ্রতা %[4]s%% (সীমার উপরে)।",
	RainAndHumidityFallback: "অবিলম্বে পদক্ষেপ নিন।",
	HumidityCritical:        "আপনার %[1]s %[2]s আর্দ্রতা %[3]s%% (ঝুঁকিপূর্ণ স্তর)।",
	HumidityFallback:        "হাওয়া চলাচল বাড়ান।",
	RainCritical:            "%[1]s বৃষ্টির সম্ভাবনা %[2]s%%। %[3]s %[4]s রক্ষা করুন।",
	RainMitigation: map[model.StorageType]string{
		model.StorageSilo: "দরজা-জানালা বন্ধ রাখুন এবং ফ্যান চালু করুন।",
		model.StorageBag:  "বস্তাগুলো উঁচু স্থানে সরান বা ঢেকে রাখুন।",
	},
	TemperatureCritical: "তাপমাত্রা %[1]s°C (%[2]s এর জন্য %[3]s-%[4]s°C সুপারিশ করা হয়)। %[5]s তাপমাত্রা নিয়ন্ত্রণের ব্যবস্থা নিন।",

	RainPrepare:           "%[1]s বৃষ্টির সম্ভাবনা %[2]s%%। %[3]s %[4]s প্রস্তুত রাখুন এবং %[5]s।",
	RainPrepareFallback:   "নিয়মিত পরীক্ষা করুন",
	HumidityWatch:         "আর্দ্রতা %[1]s%% (উচ্চ স্তর)। %[2]s %[3]s %[4]s।",
	HumidityWatchFallback: "হাওয়া চলাচল নিশ্চিত করুন",

	Monitor:         "%[1]s %[2]s পরিস্থিতি নিয়মিত পর্যবেক্ষণ করুন।",
	MonitorRainNote: "বৃষ্টির সম্ভাবনা %s%%।",
	Favorable:       "%[1]s %[2]s পরিস্থিতি অনুকূল রয়েছে। নিয়মিত পরীক্ষা চালিয়ে যান।",

	Actions: map[model.Action]string{
		model.ActionRunFan:              "ফ্যান চালু করুন",
		model.ActionIncreaseAirflow:     "হাওয়া চলাচল বাড়ান",
		model.ActionControlHumidity:     "আর্দ্রতা নিয়ন্ত্রণ করুন",
		model.ActionMoveBagsToDryPlace:  "বস্তা শুকনো স্থানে সরান",
		model.ActionEnsureAirflow:       "হাওয়া চলাচল নিশ্চিত করুন",
		model.ActionRunFanRegularly:     "নিয়মিত ফ্যান চালান",
		model.ActionCheckHumidity:       "আর্দ্রতা পরীক্ষা করুন",
		model.ActionMaintainVentilation: "বায়ুচলাচল বজায় রাখুন",
		model.ActionRaiseBags:           "বস্তা উঁচু স্থানে রাখুন",
		model.ActionShieldFromRain:      "বৃষ্টি থেকে সুরক্ষিত রাখুন",
		model.ActionInspectRegularly:    "নিয়মিত পরীক্ষা করুন",
		model.ActionKeepBagsDry:         "বস্তা শুকনো রাখুন",
		model.ActionKeepAwayFromRain:    "বৃষ্টি থেকে দূরে রাখুন",
		model.ActionControlTemperature:  "তাপমাত্রা নিয়ন্ত্রণ করুন",
		model.ActionStoreBagsDry:        "বস্তা শুকনো স্থানে রাখুন",
	},

	FactorHumidityOver: "আর্দ্রতা %s%% (সীমা: %s%%)",
	FactorHumidityNear: "আর্দ্রতা উচ্চ: %s%%",
	FactorRain:         "বৃষ্টির সম্ভাবনা %s%%",
	FactorTemperature:  "তাপমাত্রা %s°C (সুপারিশ: %s-%s°C)",
	FactorBagStorage:   "বস্তা সংরক্ষণ (বৃষ্টির জন্য ঝুঁকিপূর্ণ)",

	RiskLabels: map[model.RiskLevel]string{
		model.RiskCritical: "সমালোচনামূলক",
		model.RiskHigh:     "উচ্চ",
		model.RiskMedium:   "মাঝারি",
		model.RiskLow:      "নিম্ন",
	},
}
