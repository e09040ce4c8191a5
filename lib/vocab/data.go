package vocab

// Default builds the built-in vocabulary. Entry order below is load-bearing:
// the recognizer and synthesizer iterate these slices front to back.
func Default() *Vocabulary {
	v := &Vocabulary{
		labTests: []LabTest{
			{Key: "crp", Name: "C-reactive protein", Normal: "<3.0 mg/L", Keywords: []string{"inflammation", "acute phase"}},
			{Key: "hba1c", Name: "Hemoglobin A1c", Normal: "<5.7%", Keywords: []string{"diabetes", "glucose control"}},
			{Key: "glucose", Name: "Blood glucose", Normal: "70-100 mg/dL", Keywords: []string{"diabetes", "hypoglycemia"}},
			{Key: "cholesterol", Name: "Total cholesterol", Normal: "<200 mg/dL", Keywords: []string{"cardiovascular", "lipid"}},
			{Key: "hdl", Name: "HDL cholesterol", Normal: ">40 mg/dL (M), >50 mg/dL (F)", Keywords: []string{"cardiovascular"}},
			{Key: "ldl", Name: "LDL cholesterol", Normal: "<100 mg/dL", Keywords: []string{"cardiovascular"}},
			{Key: "triglyceride", Name: "Triglycerides", Normal: "<150 mg/dL", Keywords: []string{"cardiovascular", "lipid"}},
			{Key: "bun", Name: "Blood urea nitrogen", Normal: "7-20 mg/dL", Keywords: []string{"kidney", "renal"}},
			{Key: "creatinine", Name: "Creatinine", Normal: "0.6-1.2 mg/dL", Keywords: []string{"kidney", "renal"}},
			{Key: "alt", Name: "ALT", Normal: "7-56 U/L", Keywords: []string{"liver", "hepatic"}},
			{Key: "ast", Name: "AST", Normal: "10-40 U/L", Keywords: []string{"liver", "hepatic"}},
			{Key: "bp", Name: "Blood pressure", Normal: "<120/80 mmHg", Keywords: []string{"hypertension", "cardiovascular"}},
			{Key: "wbc", Name: "White blood cell count", Normal: "4,500-11,000/μL", Keywords: []string{"infection", "immune"}},
			{Key: "rbc", Name: "Red blood cell count", Normal: "4.7-6.1M/μL (M), 4.2-5.4M/μL (F)", Keywords: []string{"anemia"}},
			{Key: "hemoglobin", Name: "Hemoglobin", Normal: "14-18 g/dL (M), 12-16 g/dL (F)", Keywords: []string{"anemia"}},
			{Key: "hematocrit", Name: "Hematocrit", Normal: "42-52% (M), 37-47% (F)", Keywords: []string{"anemia"}},
			{Key: "platelet", Name: "Platelet count", Normal: "150,000-450,000/μL", Keywords: []string{"bleeding", "coagulation"}},

			// tumor markers; the hyphen/space aliases of CA-125 share one spec
			{Key: "ca125", Name: "CA-125", Normal: "<35 U/mL", Keywords: []string{"ovarian cancer", "tumor marker", "gynecologic cancer"}},
			{Key: "ca-125", Name: "CA-125", Normal: "<35 U/mL", Keywords: []string{"ovarian cancer", "tumor marker", "gynecologic cancer"}},
			{Key: "ca 125", Name: "CA-125", Normal: "<35 U/mL", Keywords: []string{"ovarian cancer", "tumor marker", "gynecologic cancer"}},
			{Key: "cea", Name: "CEA", Normal: "<3.0 ng/mL", Keywords: []string{"colorectal cancer", "tumor marker"}},
			{Key: "afp", Name: "AFP", Normal: "<10 ng/mL", Keywords: []string{"liver cancer", "hepatocellular carcinoma", "tumor marker"}},
			{Key: "psa", Name: "PSA", Normal: "<4.0 ng/mL", Keywords: []string{"prostate cancer", "tumor marker"}},
			{Key: "ca19-9", Name: "CA 19-9", Normal: "<37 U/mL", Keywords: []string{"pancreatic cancer", "tumor marker"}},
			{Key: "ca15-3", Name: "CA 15-3", Normal: "<30 U/mL", Keywords: []string{"breast cancer", "tumor marker"}},
			{Key: "beta-hcg", Name: "Beta-hCG", Normal: "<5 mIU/mL", Keywords: []string{"testicular cancer", "tumor marker", "pregnancy"}},
			{Key: "ldh", Name: "LDH", Normal: "140-280 U/L", Keywords: []string{"tissue damage", "tumor marker"}},
		},

		diseases: []Entry{
			{"당뇨병", "diabetes mellitus"},
			{"고혈압", "hypertension"},
			{"파킨슨병", "parkinson disease"},
			{"알츠하이머", "alzheimer disease"},
			{"심근경색", "myocardial infarction"},
			{"뇌졸중", "stroke"},
			{"암", "cancer"},
			{"관절염", "arthritis"},
			{"천식", "asthma"},
			{"우울증", "depression"},
			{"불안장애", "anxiety disorder"},
			{"간염", "hepatitis"},
			{"신부전", "renal failure"},
			{"심부전", "heart failure"},
			{"골다공증", "osteoporosis"},
			{"고지혈", "hyperlipidemia"},
			{"고지혈증", "hyperlipidemia"},
			{"이상지질혈증", "dyslipidemia"},
			{"고콜레스테롤혈증", "hypercholesterolemia"},
			{"고중성지방혈증", "hypertriglyceridemia"},
			{"동맥경화", "atherosclerosis"},
			{"협심증", "angina pectoris"},
			{"부정맥", "arrhythmia"},
			{"심방세동", "atrial fibrillation"},
			{"갑상선기능항진증", "hyperthyroidism"},
			{"갑상선기능저하증", "hypothyroidism"},
			{"비만", "obesity"},
			{"대사증후군", "metabolic syndrome"},
			{"위염", "gastritis"},
			{"위궤양", "gastric ulcer"},
			{"십이지장궤양", "duodenal ulcer"},
			{"역류성식도염", "gastroesophageal reflux disease"},
			{"폐렴", "pneumonia"},
			{"기관지염", "bronchitis"},
			{"만성폐쇄성폐질환", "chronic obstructive pulmonary disease"},
			{"뇌전증", "epilepsy"},
			{"편두통", "migraine"},
			{"치매", "dementia"},

			{"파킨슨", "parkinson"},
			{"파킨슨증", "parkinsonism"},
			{"도파민", "dopamine"},
			{"레보도파", "levodopa"},
			{"l-dopa", "levodopa"},
			{"카비도파", "carbidopa"},
			{"도파민작용제", "dopamine agonist"},
			{"프라미펙솔", "pramipexole"},
			{"로피니롤", "ropinirole"},
			{"떨림", "tremor"},
			{"진전", "tremor"},
			{"경직", "rigidity"},
			{"서동증", "bradykinesia"},
			{"자세불안정", "postural instability"},
			{"보행장애", "gait disorder"},
			{"운동장애", "movement disorder"},
			{"신경퇴행성질환", "neurodegenerative disease"},
			{"심부뇌자극술", "deep brain stimulation"},
			{"dbs", "deep brain stimulation"},

			{"치료", "treatment"},
			{"치료법", "therapy"},
			{"치료방법", "treatment method"},
			{"약물치료", "drug therapy"},
			{"수술치료", "surgical treatment"},
			{"물리치료", "physical therapy"},
			{"재활치료", "rehabilitation"},
			{"운동치료", "exercise therapy"},

			{"spinal cord stimulation", "spinal cord stimulation"},
			{"scs", "spinal cord stimulation"},
			{"척수자극술", "spinal cord stimulation"},
			{"신경자극술", "neurostimulation"},
			{"neurostimulation", "neurostimulation"},
			{"deep brain stimulation", "deep brain stimulation"},
			{"vagus nerve stimulation", "vagus nerve stimulation"},
			{"vns", "vagus nerve stimulation"},
			{"미주신경자극술", "vagus nerve stimulation"},
			{"peripheral nerve stimulation", "peripheral nerve stimulation"},
			{"pns", "peripheral nerve stimulation"},
			{"말초신경자극술", "peripheral nerve stimulation"},
			{"transcutaneous electrical nerve stimulation", "tens"},
			{"tens", "tens"},
			{"경피전기신경자극술", "tens"},

			{"만성통증", "chronic pain"},
			{"신경병증성통증", "neuropathic pain"},
			{"요통", "back pain"},
			{"목통증", "neck pain"},
			{"관절통", "joint pain"},
			{"두통", "headache"},

			{"효능", "efficacy"},
			{"효과", "effectiveness"},
			{"효과성", "effectiveness"},
			{"치료효과", "therapeutic effect"},
			{"임상효과", "clinical effect"},
			{"결과", "outcome"},
			{"성과", "outcome"},
		},

		priorityDiseases: []Entry{
			{"파킨슨", "parkinson disease"},
			{"파킨슨병", "parkinson disease"},
			{"알츠하이머", "alzheimer disease"},
			{"치매", "dementia"},
			{"당뇨", "diabetes mellitus"},
			{"고혈압", "hypertension"},
			{"고지혈", "hyperlipidemia"},
			{"심근경색", "myocardial infarction"},
			{"뇌졸중", "stroke"},
			{"관절염", "arthritis"},
			{"천식", "asthma"},
			{"우울증", "depression"},
			{"불안", "anxiety disorder"},
			{"간염", "hepatitis"},
			{"신부전", "renal failure"},
			{"심부전", "heart failure"},
			{"골다공증", "osteoporosis"},
			{"난소암", "ovarian cancer"},
			{"유방암", "breast cancer"},
			{"폐암", "lung cancer"},
			{"대장암", "colorectal cancer"},
			{"위암", "gastric cancer"},
			{"간암", "liver cancer"},
			{"췌장암", "pancreatic cancer"},
			{"전립선암", "prostate cancer"},
		},

		treatments: []string{
			"spinal cord stimulation",
			"scs",
			"척수자극술",
			"신경자극술",
			"neurostimulation",
			"deep brain stimulation",
			"dbs",
			"심부뇌자극술",
			"vagus nerve stimulation",
			"vns",
			"미주신경자극술",
			"peripheral nerve stimulation",
			"pns",
			"말초신경자극술",
			"tens",
			"경피전기신경자극술",
			"수술",
			"시술",
			"요법",
		},

		tumorMarkers: []TumorMarker{
			{Key: "cea", Patterns: []string{"cea"}},
			{Key: "afp", Patterns: []string{"afp", "alpha fetoprotein"}},
			{Key: "psa", Patterns: []string{"psa", "prostate specific antigen"}},
			{Key: "ca19-9", Patterns: []string{"ca 19-9", "ca19-9", "ca 19 9"}},
			{Key: "ca15-3", Patterns: []string{"ca 15-3", "ca15-3", "ca 15 3"}},
			{Key: "beta-hcg", Patterns: []string{"beta hcg", "beta-hcg", "bhcg"}},
			{Key: "ldh", Patterns: []string{"ldh", "lactate dehydrogenase"}},
		},

		koreanLabNames: map[string]string{
			"crp":         "c반응성단백",
			"hba1c":       "당화혈색소",
			"glucose":     "혈당",
			"cholesterol": "콜레스테롤",
			"bp":          "혈압",
		},

		medicalTerms: []Entry{
			{"치료", "treatment"},
			{"진단", "diagnosis"},
			{"증상", "symptoms"},
			{"환자", "patient"},
			{"임상", "clinical"},
			{"수술", "surgery"},
			{"시술", "procedure"},
			{"요법", "therapy"},
			{"약물", "drug"},
			{"투약", "medication"},
			{"처방", "prescription"},
			{"검사", "examination"},
			{"진료", "medical care"},
			{"병원", "hospital"},
			{"의료", "medical"},
			{"질환", "disease"},
			{"질병", "disease"},
			{"병증", "syndrome"},
			{"증후군", "syndrome"},
			{"장애", "disorder"},
			{"감염", "infection"},
			{"염증", "inflammation"},
			{"종양", "tumor"},
			{"암", "cancer"},
			{"통증", "pain"},
			{"아픔", "pain"},
			{"열", "fever"},
			{"기침", "cough"},
			{"호흡", "breathing"},
			{"심장", "heart"},
			{"혈압", "blood pressure"},
			{"혈당", "blood glucose"},
			{"콜레스테롤", "cholesterol"},
			{"간", "liver"},
			{"신장", "kidney"},
			{"폐", "lung"},
			{"뇌", "brain"},
			{"신경", "nerve"},
			{"근육", "muscle"},
			{"뼈", "bone"},
			{"관절", "joint"},
			{"피부", "skin"},
			{"혈액", "blood"},
			{"소변", "urine"},
			{"변", "stool"},
			{"체중", "weight"},
			{"비만", "obesity"},
			{"당뇨", "diabetes"},
			{"고혈압", "hypertension"},
			{"고지혈", "hyperlipidemia"},
			{"파킨슨", "parkinson"},
			{"알츠하이머", "alzheimer"},

			{"효능", "efficacy"},
			{"효과", "effectiveness"},
			{"결과", "outcome"},
			{"성과", "result"},
			{"반응", "response"},
			{"개선", "improvement"},
			{"완화", "relief"},
			{"감소", "reduction"},
			{"증가", "increase"},
			{"향상", "enhancement"},

			{"만성통증", "chronic pain"},
			{"신경통", "neuralgia"},
			{"신경병증", "neuropathy"},
			{"요통", "back pain"},
			{"목통증", "neck pain"},
			{"두통", "headache"},
			{"편두통", "migraine"},
			{"관절통", "joint pain"},
			{"근육통", "muscle pain"},
			{"복통", "abdominal pain"},
			{"흉통", "chest pain"},
		},

		englishMedicalTerms: []string{
			"treatment", "therapy", "diagnosis", "clinical", "patient", "surgery",
			"medication", "drug", "procedure", "examination", "medical", "disease",
			"syndrome", "disorder", "infection", "inflammation", "tumor", "cancer",
			"pain", "fever", "chronic", "acute", "efficacy", "effectiveness", "outcome",
		},
	}

	v.reindex()
	return v
}
