package diagnosis

// Features is the catalog of symptom feature names accepted by the remote
// diagnosis engine. The interactive symptom search filters over this list;
// each selected entry is submitted via UpdateFeature with a 1-10 severity.
var Features = []string{
	"AbdAscites",
	"AbdCramps",
	"AbdDiscomfortExacerbatedByStress",
	"AbdGuarding",
	"AbdPainImprovesLeaning",
	"AbdPainRadBack",
	"AbdPainRadPerineum",
	"AbruptOnsetOfHypertension",
	"AccessoryMuscles",
	"ACEARB",
	"ACEARBUseCausedAzotemia",
	"Acuity",
	"AcuteCholecystitisConfirmationByHIDA",
	"AcuteCholecystitisConfirmationByUS",
	"AcutePancreatitisOnAbdCT",
	"AgeAtFirstBirth",
	"AgeAtMenarche",
	"AgeAtMenopause",
	"Albuminlevel",
	"Albuminuria",
	"AldoRenin",
	"Aldosterone",
	"AlkalinePhosphatase",
	"AllergicToDye",
	"AllergyMeds",
	"ALT",
	"Ambulation",
	"AMIODigitalSubstractionAngiography",
	"AMIOnAbdominalPlainRadiograph",
	"AMIonCT",
	"AMIonCTAngio",
	"AMS",
	"Amylase",
	"AnalFissureOnCScope",
	"AnalFissureOnCSigmoidoscopy",
	"Angioedema",
	"AnionGap",
	"Anisocoria",
	"AnteriorCervicalNodesExam",
	"AntiCholinergicMed",
	"Anticoag",
	"antiGBM",
	"antiPLA2Rab",
	"antiTHSD7Aab",
	"AnyLocalNeuroFindings",
	"AorticDissectionTEE",
	"AphasiaExam",
	"AphasiaHx",
	"AphtousUlcers",
	"AppendicitsOnCT",
	"AppendicitsOnUS",
	"Arrest",
	"Arrhythmia",
	"ArrhythmiaSymptomsChestPains",
	"ArrhythmiaSymptomsHeadaches",
	"ArrhythmiaSymptomsLightheadedness",
	"ArrhythmiaSymptomsSweats",
	"ArrhythmiaSymptomsWeakness",
	"AST",
	"AsymmetricEdemaLE",
	"AxillaryLymphadenopathy",
	"BabinskiSign",
	"BackPainRadPerineum",
	"BellowTheUmbAbdPain",
	"BetaHydroxyButyrate",
	"Bicarb",
	"BiliaryColicOnCt",
	"BiliaryCollicOnEUS",
	"BiliaryCollicOnUS",
	"BladderEmpty",
	"BladderFull",
	"BladderMalignancyOnUS",
	"BleedingEsophagealVarices",
	"BleedingPUDOnEGD",
	"Blindness",
	"BlindnessRos",
	"BloodCultureForFusobacteriumNecrophorum",
	"BloodCulturesx2",
	"BloodPressureDifference",
	"BloodPressureDifferenceLR",
	"BMI",
	"BNP",
	"BoneGenPain",
	"BoneLocPain",
	"BowelSounds",
	"BrainCTContrastNormal",
	"BrainCTNonContrastForICH",
	"BrainCTNonContrastForIschemicCVA",
	"BrainCTNonContrastForSAH",
	"BrainCTNormal",
	"BrainMRIForIschemicCVA",
	"BrainMRINormal",
	"BrainMRIWithGadNormal",
	"BRCA12GeneticTesting",
	"BreastGynecomastia",
	"BreastMalignancy",
	"BronchoDilators",
	"BuddingYeastMyceliaAfterKOH",
	"BurningWithUrination",
	"BZDMed",
	"Calcium",
	"CaputMedusae",
	"CarotidBruits",
	"CdiffStoolToxin",
	"ChestCTPTX",
	"ChestPainAginaAntacid",
	"ChestPainAginaLocalized",
	"ChestPainAginaNitro",
	"ChestPainAginaRest",
	"ChestPainAginaStabilityFrequency",
	"ChestPainAginaStabilityLast",
	"ChestPainAginaStabilitySeverity",
	"ChestPainAnginaYesNo",
	"ChestPainLasts",
	"ChestPainPleuriticPulm",
	"ChestPainProgressionPulm",
	"ChestPainQuality",
	"ChestPainRadiation",
	"ChestPainSeverity",
	"Chills",
	"ChokingSwallow",
	"ChronicDiarrheaSx",
	"ChronicPancreatitisOnAbdXray",
	"ChronicPancreatitisOnCt",
	"CirrhosisOnCT",
	"CirrhosisOnFibroScan",
	"CirrhosisOnMRI",
	"CirrhosisOnUS",
	"ClaudicationLowerExtremities",
	"ColdIntolerance",
	"ColdLowerLimbTips",
	"ColdUpperLimbTips",
	"ColonMalignancyOnColonoscopy",
	"ColonMalignancyOnCTColonography",
	"CondylomataExam",
	"Conjunctivas",
	"ConstantIncoHx",
	"Constipation",
	"Contacts",
	"ContrastIodine",
	"CoronaryAngiogram",
	"CoronaryAngiogramAorticDissectionFound",
	"CranialCTNonContrastForAcuteSinusitis",
	"CranialCTNonContrastForChronicSinusitis",
	"CrohnsOnColonoscopy",
	"CrohnsOnCT",
	"CrohnsOnEGD",
	"CrohnsOnMRI",
	"CrossedStraightLegRaise",
	"CRPlevel",
	"CspineTenderEx",
	"CTCoronaryAngiogram",
	"CurrentUseOfHormonalReplacementTherapy",
	"CxrayBilInfiltrates",
	"CxrayBlInfilEdema",
	"CxrayFocalInfiltrate",
	"CxrayPleuralEffusion",
	"CxrayPneumothorax",
	"CxrayPTX",
	"CxrayWidenedMediastinum",
	"Cyanosis",
	"CystoscopyWithBiopsies",
	"DayTimeSleepiness",
	"DBP",
	"DDimer",
	"DecreasedBreathSounds",
	"DecreasedEFonECHO",
	"DecreasedMood",
	"DenseBreastTissueOnMammography",
	"DentalHygiene",
	"DeviceBloodCultures",
	"DiarrheaSx",
	"DischargeFromEar",
	"DistalPulsesLE",
	"Diuretics",
	"DiureticsOvert",
	"DiverticulitisOnCt",
	"DizzinessWithExertion",
	"DizzinessWithPosition",
	"DoubleVisionRos",
	"DryMucusMembranes",
	"DryRetching",
	"DustExposure",
	"DVTSg",
	"DVTSx",
	"DyspaureniaSx",
	"DyspneaAnxiety",
	"DyspneaBag",
	"DyspneaLightheadedness",
	"DyspneaProgressionSubjective",
	"DyspneaSeveritySubjective",
	"DyspneaTingling",
	"EarDCRos",
	"EarlyDiastolicMurmurAR",
	"EarlyDiastolicMurmurRadiationAR",
	"EarlyOnsetOfHypertension",
	"EarlySatiety",
	"EarlySystolicHolosystolicMurmurAtApexMR",
	"EarlySystolicHolosystolicMurmurAtApexRadiationMR",
	"EarlySystolicHolosystolicMurmurAtTheLeftLowerSternalBorderVSD",
	"EarlySystolicHolosystolicMurmurAtTheLeftLowerSternalRadiationVSD",
	"EarlySystolicHolosystolicMurmurLeftSternalBorderRadiationTR",
	"EarlySystolicHolosystolicMurmurLeftSternalBorderTR",
	"EarPainRos",
	"EasyBleedingFromGums",
	"EasyBruising",
	"EatingPain",
	"Edema",
	"ElectiveCoronaryAngiogram",
	"ElectrocardiogramHeartBlock",
	"ElectrocardiogramHypercalcemia",
	"ElectrocardiogramHyperkalemia",
	"ElectrocardiogramHypocalcemia",
	"ElectrocardiogramHypokalemia",
	"ElectrocardiogramIschemicChangesNSTEMI",
	"ElectrocardiogramIschemicChangesSTEMI",
	"ElectrocardiogramNonspecificSTChanges",
	"ElectrocardiogramPreExcitation",
	"ElevatedDiastolicBp",
	"ElevatedPVR",
	"ElevatedSystolicBp",
	"EpigastricTender",
	"Erythema",
	"EsophagealVaricesOnCT",
	"EsophagealVaricesOnEGD",
	"ESRlevel",
	"ETOH",
	"EtohAbdPain",
	"ExerciseTollerance",
	"Exophtalmos",
	"ExposureBladderCancer",
	"ExposurePneumonitis",
	"ExposureToCovid",
	"ExtremitiesDopplersToRuleOutDVT",
	"ExtremitiesDopplersToRuleOutSVT",
	"EyesItchy",
	"Fasting",
	"FastingGlucose",
	"FastingPain",
	"FattyStool",
	"FeaturesOfHematuriaOnUA",
	"FeaturesOfInflamationOnUA",
	"FecalUrgency",
	"FeetClonus",
	"FemaleDCSx",
	"FemaleSpottingSx",
	"FemaleVaginalDryness",
	"FemoralPulses",
	"FHAsthma",
	"FHAtopicDermatitis",
	"FHBreastCancer",
	"FHCAD",
	"FHCOPD",
	"FHDM",
	"FHDVTPEParent",
	"FHEarlyCC",
	"FHHTN",
	"FHIBDCD",
	"FHIBDCU",
	"FHMEN2",
	"FHNF1",
	"FHProstateCa",
	"FHVHL",
	"FingersClubbing",
	"Fio2",
	"FlatulenceAbdSx",
	"FluidIntake",
	"FluidNoLytesIntake",
	"FluidsSwallow",
	"FoamyUrine",
	"FoodIntake",
	"GAD65",
	"GallStonesERCP",
	"GallStonesEUS",
	"GallStonesInCommonBileDuctMRIMRCP",
	"GallStonesInCysticDuctMRIMRCP",
	"GallStonesInGallBladerMRIMRCP",
	"GallStonesInPancreaticDuctCT",
	"GallStonesInPancreaticDuctMRIMRCP",
	"GastritisOnEGD",
	"GeneralHyperreflexia",
	"GeneralizedFatigue",
	"GeneralizedWeakness",
	"GeneralizedWeaknessExam",
	"gFOBT",
	"GoldflamsSign",
	"GoodpastureSyndromeonKidneyBiopsy",
	"GramStainUrineGonococcus",
	"GrossHematuria",
	"GroundGlassOnChestCt",
	"Hba1c",
	"HeadacheAssociatedWithDecreasedCaffeineIntake",
	"HeadacheAssociatedWithHTN",
	"HeadacheAssociatedWithNausea",
	"HeadacheAssociatedWithPhysicalActivity",
	"HeadacheFrontal",
	"HeadacheIntensity",
	"HeadacheOther",
	"HeadachePulsatile",
	"HeadacheSqueezing",
	"HeadacheTemporal",
	"HeadacheThunderclap",
	"HeadacheTiming",
	"HearingLossRos",
	"HeartBurn",
	"HeartRate",
	"HeatIntolerance",
	"HeavyPeriodsSx",
	"HeightDecreased",
	"HematuriaAroundPeriod",
	"HemoptysisTiming",
	"HepatitisCAntibodiesTotalIgGAndIgM",
	"HepatomegalyEx",
	"HGBlevel",
	"HirsutismHx",
	"HistoryFever",
	"HistoryOfChestRadiation",
	"HIV1HIV2ElisaResults",
	"HIVWesternBlot",
	"Hoarseness",
	"HxChildbirth",
	"HydroOnCT",
	"HydroOnUS",
	"HypercapniaOnAbg",
	"HypoTension",
	"IndwellingCatheters",
	"InguinalLymphadenopathy",
	"INR",
	"InsulinAA",
	"IntersitialAbnormalitiesOnChestCt",
	"IrregularLiverEx",
	"IrregularPeriodsSx",
	"IschemicColitis",
	"IschemicColitisOnUltrasound",
	"IsletCellAA",
	"IVAbxMed",
	"Jaundice",
	"JaundiceHx",
	"JointsPain",
	"JugularVeinFacialVeinsThrombosis",
	"JugularVeinFacialVeinsThrombosisonCT",
	"JVD",
	"LacticAcid",
	"LactoseHydrogenTest",
	"LarynxPain",
	"LastPeriod",
	"LateOnsetOfHypertension",
	"LayingdownPain",
	"LBOOnAbdominalPlainRadiograph",
	"LBOonCT",
	"LBOonCTwDye",
	"LDH",
	"LegionellaUrinaryAntigenFeature",
	"LessUrine",
	"LimitedSpine",
	"Lipase",
	"LithiumMed",
	"LLQPain",
	"LocalizedMotorDeficitEx",
	"LocalizedNeuroMotoLEEx",
	"LocalizedNeuroMotoLEHx",
	"LocalizedNeuroMotoUEEx",
	"LocalizedNeuroMotoUEHx",
	"LocalizedNeuroSensLEEx",
	"LocalizedNeuroSensLEHx",
	"LocalizedNeuroSensUEEx",
	"LocalizedNeuroSensUEHx",
	"LocalizedSensoryDeficitEx",
	"LocalizedSensoryDeficitHx",
	"LocalPatchyInfiltratesOnChestCt",
	"LossOfConsciousness",
	"LossOfConsciousnessHeadache",
	"LossOfConsciousnessPostictall",
	"LossOfConsciousnessProdrome",
	"LossOfConsciousnessProdromeChestPain",
	"LossOfConsciousnessProdromePalpitations",
	"LossOfConsciousnessSeizures",
	"LossOfConsciousnessSphincter",
	"LossOfSmell",
	"LossOfTaste",
	"LowbackPain",
	"LowbackPainExercise",
	"LowbackPainFlexion",
	"LowbackPainSleep",
	"LowbackPainTrig",
	"LowbackSeverity",
	"LowerGIBleedSx",
	"LowerMidAbdTender",
	"LS3Tone",
	"LS4Tone",
	"LspineTenderEx",
	"LumbarLordosis",
	"LUQPain",
	"LUQTender",
	"LymphocyteLevel",
	"MalariaTravel",
	"MaleDCSx",
	"MaleProstatePainSx",
	"MaleSpottingSx",
	"MeatusTender",
	"MedsRecentChemotherapy",
	"MembranousNephropathyOnBiopsy",
	"MeningealSigns",
	"MicroscopicHematuriaOccult",
	"MicroscopicHematuriaRBCs",
	"MidSystolicEjectionMurmurAtTheRightSternalBorderAS",
	"MidSystolicEjectionMurmurAtTheRightSternalBorderRadiationAS",
	"MSAgitated",
	"MSDrowsiness",
	"MSFullyAwakens",
	"MSOrientation",
	"MSStimulusAwakens",
	"MSVerbalContact",
	"MucousCharacter",
	"MucousProduction",
	"MucousProductionInc",
	"MucusFeatures",
	"MurphysSign",
	"MuscleGenPain",
	"Nausea",
	"NeckStiffn",
	"NeckStiffness",
	"NeckSwollen",
	"NephrolithiasisOnCT",
	"NephrolithiasisOnUS",
	"NeutropeniaMeds",
	"NewDetergents",
	"NewFoods",
	"NHLongTermResidency",
	"NitratesMeds",
	"Nocturia",
	"NonEmptyBladder",
	"NoseCongestion",
	"NSAIDSMed",
	"NystagmusEyeMovements",
	"O2Sats",
	"OpiatesMed",
	"OrthopneaExam",
	"OrthopneaHx",
	"OrthostaticLightheadedness",
	"OtoscopicBulding",
	"OtoscopicErythema",
	"OtoscopicPus",
	"OtoscopicSerous",
	"PainBehindJawAngle",
	"PancreatitisMeds",
	"ParanasalSinusesTargetedXrayForSinusitis",
	"ParaspinalMuscles",
	"ParoxysmalNDHx",
	"pCO2onABG",
	"PCRChlamydia",
	"PCRCovid",
	"PCRFlu",
	"PCRGonococcus",
	"PCRHIVDNA",
	"PCRRNAHepC",
	"PCT",
	"PDAM",
	"PelvicUSForEctopicPregnancy",
	"PelvicUSForNlPregnancy",
	"PEonCTAngio",
	"PEonVQScan",
	"PerianalItchinessHx",
	"PeriAnalPainSx",
	"PeriAnalSoilingSx",
	"PericardialFriction",
	"PeriNephricStrandingOnCT",
	"PerineumItchinessHx",
	"PeriumbilicaAbdTender",
	"pHofVaginalDc",
	"pHonABG",
	"Phonophobia",
	"Photophobia",
	"PlateletsLevel",
	"PMHXAbdominalHernia",
	"PMHXAbdominalRadiation",
	"PMHXAbdominalSurgery",
	"PMHXAFib",
	"PMHXAspiration",
	"PMHXAsthma",
	"PMHXAtopicDermatitis",
	"PMHXAtypicalDuctalorLobularHyperplasiaOrLobularCarcinomaOnPriorBreastBiopsy",
	"PMHXAutoimmune",
	"PMHXBladderCancer",
	"PMHXBowelObstruction",
	"PMHXBPH",
	"PMHXBPInf",
	"PMHXBRCA12positivity",
	"PMHXCAD",
	"PMHXChestTrauma",
	"PMHXCHF",
	"PMHXChrons",
	"PMHXCKD",
	"PMHXColonCancer",
	"PMHXColonPolyp",
	"PMHXContact",
	"PMHXCOPD",
	"PMHXCU",
	"PMHXCVA",
	"PMHXDentalWork",
	"PMHXDepression",
	"PMHXDialysisCurrent",
	"PMHXDiverticulosisDiverticulitis",
	"PMHXDiverticulosisDiverticulosis",
	"PMHXDM1",
	"PMHXDM2",
	"PMHXERCP",
	"PMHXGE",
	"PMHXHeadTrauma",
	"PMHXHepatitisB",
	"PMHXHepatitisC",
	"PMHXHIV",
	"PMHXHTN",
	"PMHXHyperlipidemia",
	"PMHXHypo",
	"PMHXICH",
	"PMHXID",
	"PMHXKidneyStone",
	"PMHXLiverCirrhosis",
	"PMHXMalNeo",
	"PMHXMarfanSyndrom",
	"PMHXofDVTorPE",
	"PMHXofSVT",
	"PMHXOfThoracicAorticAneurysmOrDissection",
	"PMHXOvarianC",
	"PMHXPancreatitis",
	"PMHXPCDM",
	"PMHXPeritionitis",
	"PMHXPneumonia",
	"PMHXProstateCancer",
	"PMHXPsychOtherThanDepresion",
	"PMHXPUD",
	"PMHXPVD",
	"PMHXRecentAngiography",
	"PMHXRiskFxDVT",
	"PMHXSpontanousAbortion",
	"PMHXSubstanceAbuse",
	"PMHXTonsillectomy",
	"PMHXURTI",
	"PMHXVarices",
	"PMHXVeneral",
	"PMHXVGallStones",
	"PMHXWoundCurrent",
	"PneumoperitoneumAbdCT",
	"PneumoperitoneumAbdXray",
	"PneumoperitoneumChestCT",
	"PneumoperitoneumChestXray",
	"PoAbxMed",
	"Polydipsia",
	"Polyuria",
	"PostNasalDrainage",
	"Potassium",
	"PresenceOfPunctateHaemorrhagesOnVaginalExam",
	"PresenceOfThinAndDryMucosa",
	"PresenceOfVulvarInflamation",
	"ProlongedExpPhase",
	"ProstateMalignancy",
	"Proteinuria",
	"PSA",
	"PUDOnEGD",
	"Pupils",
	"PusMaleSpottingSx",
	"Rales",
	"RandomBloodGlucose",
	"RapidFluAntigenTesting",
	"RapidUreaseTestEGD",
	"RapiStrepTest",
	"ReboundTenderness",
	"RecentCocaineUse",
	"RecentHospitalStay",
	"RecentIVDrugs",
	"RectalExamBlood",
	"RectalExamFissure",
	"RectalExamHemorrhoids",
	"RectalExamProstateEnlarged",
	"RectalExamProstateHardened",
	"RectalExamProstateIrregular",
	"RectalExamProstateTEnder",
	"RectalExamRectalCancer",
	"RegurgFood",
	"RenalArterieDuplexUltrasonography",
	"RenalArteriesCTAngiographyWithIVDye",
	"RenalArteriesDigitalSubstractionAngiography",
	"RenalArteriesMagneticResonanceAngiographyWithGadolinum",
	"RenalArteriesMagneticResonanceAngiographyWithoutGadolinum",
	"RenalAsymmetryOnUS",
	"RenalBruits",
	"ResistantHypertension",
	"RestingPainInLowerExtremities",
	"Rhonchi",
	"RhythmRegular",
	"RightVentricleStrainOnEcho",
	"RLFlankPain",
	"RLInguinalAreaCoughBulge",
	"RLInguinalAreaTender",
	"RLInguinalPain",
	"RLLQTender",
	"RLQPain",
	"RombergsSign",
	"RR",
	"RS3Tone",
	"RS4Tone",
	"RunnyNoseCongestion",
	"RUQPain",
	"RUQTender",
	"RVStrainOnCTAngio",
	"SaltCraving",
	"SBOOnAbdominalPlainRadiograph",
	"SBOOnBedsideUltrasound",
	"SBOonCT",
	"SBOonCTwDye",
	"SBP",
	"ScrotalPainSx",
	"Seasonal",
	"SegmentalDyskinesiaHypokinesiaAkinesiaECHO",
	"Seizure",
	"SerotoninergicMed",
	"SerumbHCG",
	"SerumCK",
	"SerumCreatinine",
	"SeverityCough",
	"SexActive",
	"SexExposure",
	"SignsOfInfectionAtExitSitesOfCatheters",
	"SinusesPainRos",
	"SinusesTender",
	"SkinErythemamaculesRasExam",
	"SkinErythemamaculesRashHx",
	"SkinErythemaNodosum",
	"SkinErythemaNodosumExam",
	"SkinErythemapapulesRashExam",
	"SkinErythemapapulesRashHx",
	"SkinErythemapustulesRashExam",
	"SkinErythemapustulesRashHx",
	"SkinExfoliativeRashExam",
	"SkinFlushes",
	"SkinFlushingExam",
	"SkinHerpesRashExam",
	"SkinHerpesRashHx",
	"SkinIschemicChanges",
	"SkinItchinessHx",
	"SkinMoistureExam",
	"SkinMoistureHx",
	"SkinPetechiaeRashExam",
	"SkinPetechiaeRashHx",
	"SkinSweatingHx",
	"SkinUrticariaRashExam",
	"SkinUrticariaRashHx",
	"Smoker",
	"Sneezing",
	"Snoring",
	"SolidsSwallow",
	"SoreThroatROS",
	"SpiderAngioma",
	"SpinePain",
	"SplenomegalyEx",
	"SspineTenderEx",
	"StomachPainDistributionSx",
	"StomachPainDuration",
	"StomachPainEpigastricArea",
	"StomachPainPeriod",
	"StomachPainPeriumbilicalArea",
	"StomachPainProgressionSubjective",
	"StomachPainResolvesPRDXSx",
	"StomachPainSeveritySx",
	"Stool",
	"StoolAntigenForHPylori",
	"StoolCulture",
	"StoolEvac",
	"StoolForOvasAndParasites",
	"StraightLegRaise",
	"StrainingPain",
	"StrainStream",
	"StreptococcusUrinaryAntigenFeature",
	"StressECGCAD",
	"StressEchoCAD",
	"StressIncoHx",
	"StressNuke",
	"SwallowPain",
	"TBExposure",
	"TCAMed",
	"TearingOfEye",
	"Temp",
	"TenderLE",
	"TestisEnlarged",
	"TestisIrregular",
	"TestisTenderPE",
	"ThickenedBladderWall",
	"ThisSeasonsFluVaccineGiven",
	"ThoracicAortaCTAngiographyWithIVDye",
	"ThroatCulture",
	"ThroatCultureForFusobacteriumNecrophorum",
	"ThroatExam",
	"ThyroidBruit",
	"ThyroidEnlarged",
	"ThyroidNodules",
	"TotalBilirubin",
	"TransrectalProstateBiopsy",
	"TriglyceridesLevel",
	"Trismus",
	"TroponinI",
	"TSAT",
	"TSHFeature",
	"TspineTenderEx",
	"TwoHrPlasmaGlucoseDuringOGTT",
	"TyrosinePhosphatases",
	"UAProteinuria",
	"UConColonoscopyPathology",
	"UpperGIBleedSx",
	"UreaBreathTest",
	"UrgencyIncoHx",
	"UrinaryFrequency",
	"UrinaryUrgency",
	"UrinationRelieves",
	"UrineCytology",
	"UrinePregnancyTest",
	"UrineSoilingSx",
	"UrogramCT",
	"VaginalItching",
	"VaginalSorenessSx",
	"VagueAbdSx",
	"VeryElevatedDiastolicBp",
	"VeryElevatedSystolicBp",
	"VisualAcuityRos",
	"Vomiting",
	"WBClevel",
	"WeakAnkle",
	"WeakKnee",
	"WeakStream",
	"WeightGain",
	"WeightLoss",
	"WetMountResults",
	"Wheezing",
	"WheezingEpisodic",
	"WheezingH",
	"WhiffTestResults",
	"WoundCareRecent",
	"XrayBariumEnemaForLBO",
	"XrayDoubleBariumEnemaForColonCa",
	"YellowScleraeRos",
	"ZincTransporterZNT8",
}
