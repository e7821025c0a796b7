package phoneme

func init() {
	t = buildTable(seedPhonemes())
	if err := validatePhonemes(t.phonemes); err != nil {
		panic(err)
	}
}

func seedPhonemes() []Phoneme {
	return []Phoneme{
		// Throat
		{
			ID: "hamza", Letter: "ء", Name: "الهمزة",
			ArticulationPoint:       ThroatDeep,
			ArticulationDescription: "أقصى الحلق مما يلي الصدر",
			TrainingTip:             "أغلق الحنجرة لحظة ثم افتحها فجأة كأنك تبدأ كلمة \"أنا\"",
			Characteristics:         []Characteristic{Voiceless, NonEmphatic, Stop},
			SimilarSounds:           []string{"ع", "ه"},
		},
		{
			ID: "heh", Letter: "ه", Name: "الهاء",
			ArticulationPoint:       ThroatDeep,
			ArticulationDescription: "أقصى الحلق مع خروج نفس خفيف",
			TrainingTip:             "أخرج نفساً دافئاً من أعماق الحلق كأنك تدفئ يديك",
			Characteristics:         []Characteristic{Voiceless, NonEmphatic, Fricative},
			SimilarSounds:           []string{"ح", "ء"},
		},
		{
			ID: "ain", Letter: "ع", Name: "العين",
			ArticulationPoint:       ThroatMiddle,
			ArticulationDescription: "وسط الحلق مع تضييق المجرى",
			TrainingTip:             "ضيّق وسط الحلق مع اهتزاز الأحبال الصوتية",
			Characteristics:         []Characteristic{Voiced, NonEmphatic, Fricative},
			SimilarSounds:           []string{"ء", "ح", "غ"},
		},
		{
			ID: "hah", Letter: "ح", Name: "الحاء",
			ArticulationPoint:       ThroatMiddle,
			ArticulationDescription: "وسط الحلق مع احتكاك النفس",
			TrainingTip:             "ضيّق وسط الحلق وأخرج نفساً مهموساً دون اهتزاز",
			Characteristics:         []Characteristic{Voiceless, NonEmphatic, Fricative},
			SimilarSounds:           []string{"ه", "خ", "ع"},
		},
		{
			ID: "ghain", Letter: "غ", Name: "الغين",
			ArticulationPoint:       ThroatShallow,
			ArticulationDescription: "أدنى الحلق مما يلي الفم",
			TrainingTip:             "ارفع مؤخرة اللسان نحو أدنى الحلق كصوت الغرغرة",
			Characteristics:         []Characteristic{Voiced, NonEmphatic, Fricative},
			SimilarSounds:           []string{"خ", "ق", "ع"},
		},
		{
			ID: "khah", Letter: "خ", Name: "الخاء",
			ArticulationPoint:       ThroatShallow,
			ArticulationDescription: "أدنى الحلق مع احتكاك مهموس",
			TrainingTip:             "قرّب مؤخرة اللسان من أدنى الحلق وادفع الهواء دون صوت",
			Characteristics:         []Characteristic{Voiceless, NonEmphatic, Fricative},
			SimilarSounds:           []string{"ح", "غ", "ه"},
		},

		// Tongue back and middle
		{
			ID: "qaf", Letter: "ق", Name: "القاف",
			ArticulationPoint:       TongueBack,
			ArticulationDescription: "أقصى اللسان مع ما يحاذيه من الحنك الأعلى",
			TrainingTip:             "ألصق أقصى اللسان باللهاة ثم أطلقه بقوة",
			Characteristics:         []Characteristic{Voiceless, Emphatic, Stop},
			SimilarSounds:           []string{"ك", "غ", "ء"},
		},
		{
			ID: "kaf", Letter: "ك", Name: "الكاف",
			ArticulationPoint:       TongueBack,
			ArticulationDescription: "أقصى اللسان أسفل مخرج القاف قليلاً",
			TrainingTip:             "ألصق مؤخرة اللسان بالحنك الرخو ثم أطلقه مع نفس خفيف",
			Characteristics:         []Characteristic{Voiceless, NonEmphatic, Stop},
			SimilarSounds:           []string{"ق", "ت"},
		},
		{
			ID: "jeem", Letter: "ج", Name: "الجيم",
			ArticulationPoint:       TongueMiddle,
			ArticulationDescription: "وسط اللسان مع ما يحاذيه من الحنك الأعلى",
			TrainingTip:             "ارفع وسط اللسان ليلامس سقف الحلق ثم أطلقه مع صوت",
			Characteristics:         []Characteristic{Voiced, NonEmphatic, Stop},
			SimilarSounds:           []string{"ش", "ي", "ز"},
		},
		{
			ID: "sheen", Letter: "ش", Name: "الشين",
			ArticulationPoint:       TongueMiddle,
			ArticulationDescription: "وسط اللسان مع تفشي الهواء في الفم",
			TrainingTip:             "ارفع وسط اللسان ودع الهواء ينتشر كصوت \"اسكت\"",
			Characteristics:         []Characteristic{Voiceless, NonEmphatic, Fricative},
			SimilarSounds:           []string{"س", "ج", "ص"},
		},
		{
			ID: "yeh", Letter: "ي", Name: "الياء",
			ArticulationPoint:       TongueMiddle,
			ArticulationDescription: "وسط اللسان مع الحنك الأعلى دون إغلاق",
			TrainingTip:             "ابتسم قليلاً وارفع وسط اللسان دون أن يلمس الحنك",
			Characteristics:         []Characteristic{Voiced, NonEmphatic},
			SimilarSounds:           []string{"و", "ج"},
		},

		// Tongue edge
		{
			ID: "dad", Letter: "ض", Name: "الضاد",
			ArticulationPoint:       TongueEdge,
			ArticulationDescription: "إحدى حافتي اللسان مع ما يحاذيها من الأضراس العليا",
			TrainingTip:             "اضغط حافة اللسان على الأضراس العليا مع تفخيم الصوت",
			Characteristics:         []Characteristic{Voiced, Emphatic, Stop},
			SimilarSounds:           []string{"د", "ظ", "ط"},
		},

		// Tongue tip
		{
			ID: "teh", Letter: "ت", Name: "التاء",
			ArticulationPoint:       TongueTipUpper,
			ArticulationDescription: "طرف اللسان مع أصول الثنايا العليا",
			TrainingTip:             "ضع طرف اللسان خلف الأسنان العليا ثم أطلقه بنفس خفيف",
			Characteristics:         []Characteristic{Voiceless, NonEmphatic, Stop},
			SimilarSounds:           []string{"ط", "د", "ث"},
		},
		{
			ID: "dal", Letter: "د", Name: "الدال",
			ArticulationPoint:       TongueTipUpper,
			ArticulationDescription: "طرف اللسان مع أصول الثنايا العليا مع اهتزاز",
			TrainingTip:             "ضع طرف اللسان خلف الأسنان العليا وأطلقه مع صوت",
			Characteristics:         []Characteristic{Voiced, NonEmphatic, Stop},
			SimilarSounds:           []string{"ت", "ض", "ذ"},
		},
		{
			ID: "tah", Letter: "ط", Name: "الطاء",
			ArticulationPoint:       TongueTipUpper,
			ArticulationDescription: "طرف اللسان مع أصول الثنايا العليا مع ارتفاع مؤخرة اللسان",
			TrainingTip:             "ضع طرف اللسان مكان التاء وارفع مؤخرته نحو الحنك لتفخيم الصوت",
			Characteristics:         []Characteristic{Voiceless, Emphatic, Stop},
			SimilarSounds:           []string{"ت", "ض", "د"},
		},
		{
			ID: "theh", Letter: "ث", Name: "الثاء",
			ArticulationPoint:       TongueTipTeeth,
			ArticulationDescription: "طرف اللسان مع أطراف الثنايا العليا",
			TrainingTip:             "أخرج طرف اللسان قليلاً بين الأسنان وانفخ الهواء بهدوء",
			Characteristics:         []Characteristic{Voiceless, NonEmphatic, Fricative},
			SimilarSounds:           []string{"س", "ذ", "ف"},
		},
		{
			ID: "thal", Letter: "ذ", Name: "الذال",
			ArticulationPoint:       TongueTipTeeth,
			ArticulationDescription: "طرف اللسان مع أطراف الثنايا العليا مع اهتزاز",
			TrainingTip:             "أخرج طرف اللسان بين الأسنان مع اهتزاز الأحبال الصوتية",
			Characteristics:         []Characteristic{Voiced, NonEmphatic, Fricative},
			SimilarSounds:           []string{"ز", "ث", "د", "ظ"},
		},
		{
			ID: "zah", Letter: "ظ", Name: "الظاء",
			ArticulationPoint:       TongueTipTeeth,
			ArticulationDescription: "طرف اللسان مع أطراف الثنايا العليا مع تفخيم",
			TrainingTip:             "أخرج طرف اللسان بين الأسنان وارفع مؤخرته لتفخيم الصوت",
			Characteristics:         []Characteristic{Voiced, Emphatic, Fricative},
			SimilarSounds:           []string{"ذ", "ض", "ز"},
		},
		{
			ID: "zain", Letter: "ز", Name: "الزاي",
			ArticulationPoint:       TongueTipTeeth,
			ArticulationDescription: "طرف اللسان مع ما فوق الثنايا السفلى مع صفير",
			TrainingTip:             "قرّب طرف اللسان من الأسنان السفلى وأخرج صفيراً مع اهتزاز كصوت النحلة",
			Characteristics:         []Characteristic{Voiced, NonEmphatic, Fricative},
			SimilarSounds:           []string{"ذ", "س", "ظ"},
		},
		{
			ID: "seen", Letter: "س", Name: "السين",
			ArticulationPoint:       TongueTipTeeth,
			ArticulationDescription: "طرف اللسان مع ما فوق الثنايا السفلى مع صفير مهموس",
			TrainingTip:             "قرّب طرف اللسان من الأسنان السفلى وأخرج صفيراً دون اهتزاز",
			Characteristics:         []Characteristic{Voiceless, NonEmphatic, Fricative},
			SimilarSounds:           []string{"ص", "ش", "ث", "ز"},
		},
		{
			ID: "sad", Letter: "ص", Name: "الصاد",
			ArticulationPoint:       TongueTipTeeth,
			ArticulationDescription: "طرف اللسان مع ما فوق الثنايا السفلى مع تفخيم",
			TrainingTip:             "انطق السين ثم ارفع مؤخرة اللسان ليمتلئ الفم بالصوت",
			Characteristics:         []Characteristic{Voiceless, Emphatic, Fricative},
			SimilarSounds:           []string{"س", "ض", "ز"},
		},
		{
			ID: "noon", Letter: "ن", Name: "النون",
			ArticulationPoint:       TongueTipGum,
			ArticulationDescription: "طرف اللسان مع اللثة العليا مع غنة من الخيشوم",
			TrainingTip:             "ضع طرف اللسان على اللثة ودع الصوت يخرج من الأنف",
			Characteristics:         []Characteristic{Voiced, NonEmphatic, NasalSound},
			SimilarSounds:           []string{"م", "ل"},
		},
		{
			ID: "reh", Letter: "ر", Name: "الراء",
			ArticulationPoint:       TongueTipGum,
			ArticulationDescription: "طرف اللسان مع ظهره قليلاً مع اللثة العليا",
			TrainingTip:             "اجعل طرف اللسان يرتعش على اللثة مرة واحدة",
			Characteristics:         []Characteristic{Voiced, NonEmphatic, Trill},
			SimilarSounds:           []string{"ل", "غ"},
		},
		{
			ID: "lam", Letter: "ل", Name: "اللام",
			ArticulationPoint:       TongueTipGum,
			ArticulationDescription: "حافة اللسان وطرفه مع اللثة العليا",
			TrainingTip:             "ثبّت طرف اللسان على اللثة ودع الهواء يمر من جانبيه",
			Characteristics:         []Characteristic{Voiced, NonEmphatic, Lateral},
			SimilarSounds:           []string{"ر", "ن"},
		},

		// Lips
		{
			ID: "beh", Letter: "ب", Name: "الباء",
			ArticulationPoint:       Lips,
			ArticulationDescription: "انطباق الشفتين",
			TrainingTip:             "أطبق شفتيك ثم افتحهما فجأة مع صوت",
			Characteristics:         []Characteristic{Voiced, NonEmphatic, Stop},
			SimilarSounds:           []string{"م", "ف", "و"},
		},
		{
			ID: "meem", Letter: "م", Name: "الميم",
			ArticulationPoint:       Lips,
			ArticulationDescription: "انطباق الشفتين مع غنة من الخيشوم",
			TrainingTip:             "أطبق شفتيك ودع الصوت يخرج من الأنف",
			Characteristics:         []Characteristic{Voiced, NonEmphatic, NasalSound},
			SimilarSounds:           []string{"ب", "ن"},
		},
		{
			ID: "waw", Letter: "و", Name: "الواو",
			ArticulationPoint:       Lips,
			ArticulationDescription: "استدارة الشفتين دون انطباق",
			TrainingTip:             "دوّر شفتيك كأنك تنفخ شمعة",
			Characteristics:         []Characteristic{Voiced, NonEmphatic},
			SimilarSounds:           []string{"ب", "ف", "ي"},
		},
		{
			ID: "feh", Letter: "ف", Name: "الفاء",
			ArticulationPoint:       LipTeeth,
			ArticulationDescription: "باطن الشفة السفلى مع أطراف الثنايا العليا",
			TrainingTip:             "ضع أسنانك العليا على شفتك السفلى وانفخ الهواء",
			Characteristics:         []Characteristic{Voiceless, NonEmphatic, Fricative},
			SimilarSounds:           []string{"ث", "ب"},
		},
	}
}
