package schema

// Column metadata for sme_analytics.sme_leadbookingrevenue. This is the
// single source of truth for what generated SQL may reference; sample values
// seed the distinct-value cache when the warehouse is unreachable.
var columns = []Column{
	{Name: "leadid", Type: TypeBigInt, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Unique identifier for each lead.",
		Samples: []string{"123456789", "987654321", "555121212", "111222333", "444555666"}},
	{Name: "customerid", Type: TypeBigInt, Categorical: false, PII: PIILow, Masking: MaskHash,
		Description: "Unique identifier for each customer.",
		Samples: []string{"10000001", "20000002", "30000003", "40000004", "50000005"}},
	{Name: "investmenttypeid", Type: TypeInt, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Type of investment.",
		Samples: []string{"1", "2", "3", "4", "5"}},
	{Name: "referralid", Type: TypeBigInt, Categorical: false, PII: PIILow, Masking: MaskHash,
		Description: "Unique identifier for the referring entity.",
		Samples: []string{"678901234", "432109876", "135792468", "246801357", "9876543210"}},
	{Name: "referralid2", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskHash,
		Description: "Alternative referral identifier (string format).",
		Samples: []string{"REF-ABC-123", "REF-XYZ-456", "REF-PQR-789", "REF-STU-000", "REF-VWX-111"}},
	{Name: "covertypeid", Type: TypeInt, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Type of cover.",
		Samples: []string{"10", "20", "30", "40", "50"}},
	{Name: "leaddate", Type: TypeDate, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Date the lead was generated.",
		Samples: []string{"2023-10-26", "2023-11-15", "2023-12-01", "2024-01-10", "2024-02-20"}},
	{Name: "full_leaddate", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Full timestamp of lead generation.",
		Samples: []string{"2023-10-26 10:30:00", "2023-11-15 14:45:30", "2023-12-01 08:15:15", "2024-01-10 16:00:00", "2024-02-20 09:22:45"}},
	{Name: "leadmonth", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Month of the lead.",
		Samples: []string{"October-2019", "November-2020", "December-2025", "January-2024", "February-2026"}},
	{Name: "lead_year", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskNone,
		Description: "Year of the lead.",
		Samples: []string{"2023", "2023", "2024", "2024", "2024"}},
	{Name: "bookingdate", Type: TypeDate, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Date of booking",
		Samples: []string{"2023-10-26", "2024-01-15", "2023-07-03", "2023-12-20", "2024-03-08"}},
	{Name: "full_bookingdate", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Full date and time of booking",
		Samples: []string{"2023-10-26 14:32:15", "2024-01-15 09:55:42", "2023-07-03 18:21:07", "2023-12-20 00:11:33", "2024-03-08 11:47:59"}},
	{Name: "bookingmonth", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskNone,
		Description: "Month and year of booking",
		Samples: []string{"October 2023", "January 2024", "July 2023", "December 2023", "March 2024"}},
	{Name: "booking_year", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskNone,
		Description: "Year of booking",
		Samples: []string{"2023", "2024", "2023", "2023", "2024"}},
	{Name: "leadassigneddate", Type: TypeDate, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Date lead was assigned",
		Samples: []string{"2023-10-27", "2024-01-16", "2023-07-04", "2023-12-21", "2024-03-09"}},
	{Name: "full_leadassigneddate", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Full date and time lead was assigned",
		Samples: []string{"2023-10-27 10:15:22", "2024-01-16 15:48:01", "2023-07-04 08:33:56", "2023-12-21 22:05:11", "2024-03-09 13:29:44"}},
	{Name: "first_assigneddate", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Date of first assignment",
		Samples: []string{"2023-10-25", "2024-01-14", "2023-07-02", "2023-12-19", "2024-03-07"}},
	{Name: "statusdate", Type: TypeDate, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Date of status update",
		Samples: []string{"2023-10-28", "2024-01-17", "2023-07-05", "2023-12-22", "2024-03-10"}},
	{Name: "issuancedate", Type: TypeDate, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Date of issuance",
		Samples: []string{"2023-10-29", "2024-01-18", "2023-07-06", "2023-12-23", "2024-03-11"}},
	{Name: "revenuedate", Type: TypeDate, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Date of revenue generation",
		Samples: []string{"2023-10-30", "2024-01-19", "2023-07-07", "2023-12-24", "2024-03-12"}},
	{Name: "customer_filled_first_transitype_date", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Date when the customer first filled in their transit type.",
		Samples: []string{"2022-03-15", "2023-11-01", "2021-07-20", "2024-02-29", "2020-09-10"}},
	{Name: "policystartdate", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Start date of the insurance policy.",
		Samples: []string{"2023-01-15", "2024-05-20", "2022-09-10", "2025-03-01", "2021-12-25"}},
	{Name: "policyenddate", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "End date of the insurance policy.",
		Samples: []string{"2024-01-15", "2025-05-20", "2023-09-10", "2026-03-01", "2022-12-25"}},
	{Name: "paymentdate", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Date of the payment.",
		Samples: []string{"2023-10-26", "2024-01-10", "2022-07-18", "2023-05-03", "2021-11-15"}},
	{Name: "contact_person_name", Type: TypeString, Categorical: false, PII: PIIHigh, Masking: MaskFaker,
		Description: "Name of the contact person.",
		Samples: []string{"Ms. Anya Sharma", "Mr. David Lee", "Dr. Emily Carter", "Mrs. Fatima Khan", "Professor John Smith"}},
	{Name: "client", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskHash,
		Description: "Client identifier.",
		Samples: []string{"CL12345", "CL67890", "CL13579", "CL24680", "CL10101"}},
	{Name: "companyname", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Name of the company.",
		Samples: []string{"Acme Corp", "Beta Solutions", "Gamma Industries", "Delta Technologies", "Epsilon Enterprises"}},
	{Name: "occupancyid", Type: TypeInt, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Unique identifier for the occupancy type.",
		Samples: []string{"1", "5", "12", "20", "7"}},
	{Name: "unsubscription_flag", Type: TypeInt, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Flag indicating if the client has unsubscribed (1=yes, 0=no).",
		Samples: []string{"0", "1"}},
	{Name: "occupancyname", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Description of the occupancy type.",
		Samples: []string{"Electrical Engineers (not manufacturers) Installation and repair of plant, fittings and Appartus incl. wireless, telephone and telegraph", "Occupancy not Mentioned", "Shop - (Garment Shops)", "Cable Laying, installation & erection work - away from shop / yard risk", "Electronic Goods Store"}},
	{Name: "parentcategoryid", Type: TypeInt, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "ID of the parent category",
		Samples: []string{"1", "12", "5", "100", "3"}},
	{Name: "occupancyname2", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Name of the occupancy",
		Samples: []string{"Services", "Specialist physician", "Dwellings: Co-operative society", "Indoor clerical works", "Residential and commercial buildings, Office buildings, Schools, Universities, Hotels, Motels, Restaurants, Hospitals,Â  including Interior works (including all sundry works)-RCC construction"}},
	{Name: "booking_occupancy", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Occupancy details for booking",
		Samples: []string{"Cashew nut Factories", "Factory sheds, Warehouses, Cold storages (RCC Construction only)", "Oil mills (not mineral oils) and oilcake manufacturers", "Cable laying, installation & erection work - away from shop/yard risk", "Leather and leather goods"}},
	{Name: "lead_occupancy", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Occupancy details for lead",
		Samples: []string{"Agriculture, Forestry & Allied", "New machinery or equipment for industrial use", "Ice dealers & mfg", "Agricultural farms", "Electrical engineers (not manufacturers) installation and repair of plant, fittings and appartus incl. wireless, telephone and telegraph"}},
	{Name: "mtx_occupancy", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Occupancy details for MTX",
		Samples: []string{"Engineering Workshop - Structural Steel fabricators, Sheet Metal fabricators", "Motor Vehicle showroom including sales and service", "Office Premises", "Dwellings: Co-operative society", "Shops - dealing in non-hazardous goods"}},
	{Name: "leadassignedagentname", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Name of the assigned agent for the lead",
		Samples: []string{"John Doe", "Jane Smith", "Peter Jones", "Mary Brown", "David Wilson"}},
	{Name: "currentlyassigneduser", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Name of the currently assigned user",
		Samples: []string{"Alice Johnson", "Bob Williams", "Charlie Davis", "Eva Garcia", "Frank Rodriguez"}},
	{Name: "leadreportingmanagername", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Name of the lead's reporting manager",
		Samples: []string{"Sarah Lee", "Tom Clark", "Jessica Miller", "Kevin Moore", "Ashley Taylor"}},
	{Name: "leadreportingmanagername2", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Alternative name of the lead's reporting manager",
		Samples: []string{"Brian Hall", "Amanda Perez", "Chris Young", "Katie Scott", "Michael King"}},
	{Name: "lead_agentid", Type: TypeString, Categorical: false, PII: PIINone, Masking: MaskHash,
		Description: "ID of the lead's agent",
		Samples: []string{"a1b2c3d4", "e5f6g7h8", "i9j0k1l2", "m3n4o5p6", "q7r8s9t0"}},
	{Name: "lead_manager_id", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskHash,
		Description: "ID of the lead manager",
		Samples: []string{"LM12345", "LM67890", "LM13579", "LM24680", "LM11223"}},
	{Name: "first_assigned_agent", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Name of the agent first assigned to the lead",
		Samples: []string{"Jane Doe", "John Smith", "Alice Johnson", "Bob Williams", "Eva Brown"}},
	{Name: "first_assigned_agentid", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskHash,
		Description: "ID of the agent first assigned to the lead",
		Samples: []string{"AGENT123", "AGENT456", "AGENT789", "AGENT000", "AGENTABC"}},
	{Name: "booking_agent", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Name of the booking agent",
		Samples: []string{"Sarah Jones", "David Lee", "Emily Davis", "Michael Wilson", "Ashley Garcia"}},
	{Name: "booking_agent_manager", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Name of the booking agent's manager",
		Samples: []string{"-", "Karen Miller", "Frank Rodriguez", "Jessica Taylor", "Brian Anderson"}},
	{Name: "booking_agent_manager2", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Name of the second booking agent manager (if applicable)",
		Samples: []string{"Kevin Moore", "Linda Clark", "Patrick Hall", "Amanda Scott", "Christopher Lewis"}},
	{Name: "booking_manager_id", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskHash,
		Description: "ID of the booking manager",
		Samples: []string{"BM1111", "BM2222", "BM3333", "BM4444", "BM5555"}},
	{Name: "bookingagent_id", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskHash,
		Description: "ID of the booking agent",
		Samples: []string{"BA112233", "BA445566", "BA778899", "BA001122", "BA334455"}},
	{Name: "lead2assignment_tat_mins", Type: TypeDouble, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Time taken (in minutes) to assign a lead to an agent",
		Samples: []string{"15.5", "20.2", "10.8", "30.1", "25.7"}},
	{Name: "customer_filled_first_transitype", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Type of transit selected by the customer",
		Samples: []string{"Single Transit", "Open Transit", "Both", "ProductLiability", "PublicLiability"}},
	{Name: "transittype2", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Type of transit.",
		Samples: []string{"Not Selected", "Single Transit", "Annual Open"}},
	{Name: "assignedbyuserid", Type: TypeBigInt, Categorical: false, PII: PIILow, Masking: MaskHash,
		Description: "ID of the user who assigned the task.",
		Samples: []string{"1234567890", "9876543210", "1357924680", "2468013579", "1010101010"}},
	{Name: "assigned_to_group_name", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Name of the group assigned to.",
		Samples: []string{"Marine Insurance", "Workmen Compensation", "Fire & Burglary Insurance", "Group Personal Accident", "Group Health Insurance"}},
	{Name: "assigntogroupid", Type: TypeInt, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "ID of the assigned group.",
		Samples: []string{"1", "2", "3", "4", "5"}},
	{Name: "parentid", Type: TypeBigInt, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "ID of the parent record.",
		Samples: []string{"1001", "2002", "3003", "4004", "5005"}},
	{Name: "transittype", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Type of transit, contains inconsistencies.",
		Samples: []string{"Annual Open", "", "Annual Transit", "Single Transit", "Annual open"}},
	{Name: "state", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "State of residence or location.",
		Samples: []string{"Delhi", "Maharashtra", "Andhra Pradesh", "Uttar Pradesh", "Tamil Nadu"}},
	{Name: "city", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "City of residence or location.",
		Samples: []string{"Bengaluru", "Mumbai", "Chennai", "Kolkata", "Hyderabad"}},
	{Name: "city_tier", Type: TypeInt, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Tier of the city.",
		Samples: []string{"1", "3", "2"}},
	{Name: "typeofpolicy", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskNone,
		Description: "Type of policy.",
		Samples: []string{"INDIVIDUAL", "FAMILYFLOATER", "Annual Transit", "Employee Only", "Single Transit"}},
	{Name: "productname", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Name of the product.",
		Samples: []string{"SME/GMC", "", "SME-PBPARTNERS", "TermLife"}},
	{Name: "lead_subproduct", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Sub-product related to the lead.",
		Samples: []string{"Marine Insurance", "Group Health Insurance", "Office Package Policy", "Shop Owner Insurance", "Workmen Compensation"}},
	{Name: "lead_subproduct2", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Second sub-product related to the lead.",
		Samples: []string{"Marine Insurance", "Workmen Compensation", "Shop Owners Insurance", "Group Personal Accident", "Group Health Insurance"}},
	{Name: "booking_subproduct", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Sub-product booked.",
		Samples: []string{"Group Personal Accident", "Professional Indemnity", "Marine Insurance", "Workmen Compensation", "Fire and Burglary Insurance"}},
	{Name: "product_bucket", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Category of the product.",
		Samples: []string{"Liability", "Marine", "Workmen Compensation", "Property", "Group Health Insurance"}},
	{Name: "planname", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Name of the insurance plan.",
		Samples: []string{"Workmen Compensation", "Fire Insurance", "Professional Indemnity for Doctors", "Group Health Insurance", "Specific Marine"}},
	{Name: "planid", Type: TypeInt, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Unique identifier for the insurance plan.",
		Samples: []string{"12345", "67890", "13579", "24680", "35791"}},
	{Name: "leadeb_noneb", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Indicates if the lead is EB or Non EB.",
		Samples: []string{"EB", "Non EB"}},
	{Name: "leadsource", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskHash,
		Description: "Source of the lead.",
		Samples: []string{"SourceA", "SourceB", "SourceC", "SourceD", "SourceE"}},
	{Name: "leadcreationsource", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskHash,
		Description: "Source where the lead was created.",
		Samples: []string{"SystemX", "SystemY", "SystemZ", "PlatformA", "PlatformB"}},
	{Name: "utm_source", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Source of the marketing campaign lead.",
		Samples: []string{"google", "organic", "Self Referral", "", "google_brand"}},
	{Name: "final_utmsource", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Final source of the lead after processing.",
		Samples: []string{"Others", "Rejected_winback_manual", "Retarget_winback_manual", "Expiry_winback", "Cross_sell_winback"}},
	{Name: "utm_medium", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Marketing medium used.",
		Samples: []string{"cpc", "BU", "SMS", "Article", "ppc"}},
	{Name: "utm_term", Type: TypeString, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Keywords used in the campaign.",
		Samples: []string{"insurance quotes", "best car insurance", "cheap health insurance", "life insurance rates", "term life insurance"}},
	{Name: "branchname", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Name of the branch.",
		Samples: []string{"Branch A", "Branch B", "Branch C", "Branch D", "Branch E"}},
	{Name: "utm_campaign", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Name of the marketing campaign.",
		Samples: []string{"", "SME_Workmen_2019", "Mobile App 1_SMS", "Marine00TransitExact", "GroupHealthInsuranceNew00Group"}},
	{Name: "utm_content", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Specific content of the campaign.",
		Samples: []string{"PI3", "Marine14", "Erection1", "", "407324728543"}},
	{Name: "mkt_category", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Marketing category.",
		Samples: []string{"Brand Paid", "NA", "Direct", "Referral", "Non Brand Paid"}},
	{Name: "lead_department", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskNone,
		Description: "Department handling the lead.",
		Samples: []string{"Sales", "Marketing", "Customer Service", "Operations", "Finance"}},
	{Name: "is_lead_hybrid", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Indicates if the lead is hybrid.",
		Samples: []string{"nothybrid", "hybrid"}},
	{Name: "booking_eb_noneb", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Indicates whether the booking is an EB (Employee Booking) or Non-EB.",
		Samples: []string{"Non EB", "EB"}},
	{Name: "booking_department", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "The department responsible for the booking.",
		Samples: []string{"CC", "FOS", "NA", "CRT"}},
	{Name: "is_booking_hybrid", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Indicates if the booking is hybrid or not.",
		Samples: []string{"nothybrid", "hybrid"}},
	{Name: "statusname", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskRedact,
		Description: "The current status of the booking.",
		Samples: []string{"Sale Complete", "Rejected (Contacted)", "Interested", "Soft Copy Received", "Rejection Completed"}},
	{Name: "bms_statusname", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskRedact,
		Description: "The status from the BMS system.",
		Samples: []string{"Sale Complete", "Hard Copy Received", "Refund Completed", "Rejection Completed", "Case Login"}},
	{Name: "statusid", Type: TypeInt, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Numerical ID for the booking status.",
		Samples: []string{"1", "12", "5", "99", "3"}},
	{Name: "statusby", Type: TypeBigInt, Categorical: false, PII: PIILow, Masking: MaskHash,
		Description: "ID of the user who updated the status.",
		Samples: []string{"1234567890", "9876543210", "1122334455", "6677889900", "5566778899"}},
	{Name: "substatusname", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskRedact,
		Description: "Sub-status of the booking.",
		Samples: []string{"Just Browsing", "Lost to competition", "Not Reachable Anymore", "Dropped Plan", "Child lead"}},
	{Name: "substatusid", Type: TypeInt, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Numerical ID for the booking sub-status.",
		Samples: []string{"1", "5", "10", "12", "2"}},
	{Name: "booking_status", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskRedact,
		Description: "Overall status of the booking.",
		Samples: []string{"IssuedBusiness", "notbooked", "WipBusiness", "LostBusiness", "IssuedBusiness"}},
	{Name: "suminsured", Type: TypeDouble, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Sum insured amount.",
		Samples: []string{"150000.0", "500000.0", "1000000.0", "250000.0", "750000.0"}},
	{Name: "premium", Type: TypeDouble, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Premium amount.",
		Samples: []string{"1500.0", "5000.0", "10000.0", "2500.0", "7500.0"}},
	{Name: "brokerage", Type: TypeDouble, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Brokerage amount.",
		Samples: []string{"150.0", "500.0", "1000.0", "250.0", "750.0"}},
	{Name: "revenue", Type: TypeDouble, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Revenue generated.",
		Samples: []string{"15000.0", "50000.0", "100000.0", "25000.0", "75000.0"}},
	{Name: "periodicityamount", Type: TypeDouble, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Amount per period.",
		Samples: []string{"125.0", "416.67", "833.33", "208.33", "625.0"}},
	{Name: "insurername", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Name of the insurer.",
		Samples: []string{"Insurer Alpha", "Insurer Beta", "Insurer Gamma", "Insurer Delta", "Insurer Epsilon"}},
	{Name: "supplierid", Type: TypeInt, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Unique identifier for the supplier.",
		Samples: []string{"1", "12", "23", "34", "45"}},
	{Name: "insurerfullname", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Full name of the insurer.",
		Samples: []string{"Insurer Company A", "Insurer Company B", "Insurer Company C", "Insurer Company D", "Insurer Company E"}},
	{Name: "tpaname", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Name of the third-party administrator.",
		Samples: []string{"TPA One", "TPA Two", "TPA Three", "TPA Four", "TPA Five"}},
	{Name: "totalnooflives", Type: TypeInt, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Total number of lives covered.",
		Samples: []string{"100", "500", "1000", "250", "750"}},
	{Name: "totalnoofemployees", Type: TypeInt, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Total number of employees in the company.",
		Samples: []string{"100", "250", "50", "1200", "75"}},
	{Name: "paymentsource", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Source of payment for the policy.",
		Samples: []string{"Credit Card", "NEFT", "Online", "Cash", "Debit Card"}},
	{Name: "policyno", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskHash,
		Description: "Unique identifier for the insurance policy.",
		Samples: []string{"ABC123XYZ", "DEF456GHI", "JKL789MNO", "PQR012STU", "VWX345YZ"}},
	{Name: "paymentstatus", Type: TypeBigInt, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Payment status code.",
		Samples: []string{"4002.0", "5002.0", "3002.0", "None", "300.0"}},
	{Name: "paymentstatus2", Type: TypeBigInt, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Another payment status code (potentially redundant).",
		Samples: []string{"4002.0", "3002.0", "None", "5002.0", "300.0"}},
	{Name: "paymentsubstatus", Type: TypeInt, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Sub-status of payment.",
		Samples: []string{"0.0", "49.0", "50.0", "None", "40.0"}},
	{Name: "paymentperiodicity", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Frequency of payments.",
		Samples: []string{"Yearly", "", "3002", "Annually", "Flexi"}},
	{Name: "new_eb_payment_mode", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Payment mode for new EB payments.",
		Samples: []string{"RFQ", "POS", "CJ"}},
	{Name: "policytype", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Type of insurance policy.",
		Samples: []string{"New", "NA", "Renewal", "Rollover"}},
	{Name: "ispaymentdone", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Indicates whether payment is completed.",
		Samples: []string{"Yes", "No"}},
	{Name: "isassisted", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Indicates whether the user received assistance.",
		Samples: []string{"Assisted", "NA", "Unassisted"}},
	{Name: "kycstatusid", Type: TypeInt, Categorical: true, PII: PIILow, Masking: MaskHash,
		Description: "ID representing KYC status.",
		Samples: []string{"1", "2", "0", "4", "5"}},
	{Name: "kyctypeid", Type: TypeInt, Categorical: true, PII: PIILow, Masking: MaskHash,
		Description: "ID representing KYC type.",
		Samples: []string{"0", "1", "5", "0", "1"}},
	{Name: "kyctype", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskNone,
		Description: "Type of KYC verification.",
		Samples: []string{"ckyc", "doc upload", "ckyc", "doc upload", "ckyc"}},
	{Name: "kycstatus", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskNone,
		Description: "Status of KYC verification.",
		Samples: []string{"accepted", "pending", "rejected", "not required", "pending"}},
	{Name: "is_pure", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Indicates purity status.",
		Samples: []string{"Impure", "Pure"}},
	{Name: "issuence", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Indicates issuance status.",
		Samples: []string{"issued", "not issued"}},
	{Name: "lead_count", Type: TypeInt, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Number of leads.",
		Samples: []string{"10", "5", "22", "1", "8"}},
	{Name: "booking_count", Type: TypeInt, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Number of bookings.",
		Samples: []string{"2", "0", "7", "3", "1"}},
	{Name: "conversioncheck", Type: TypeInt, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Conversion check indicator (1 = converted, 0 = not converted).",
		Samples: []string{"1.0", "None"}},
	{Name: "cpmrto", Type: TypeInt, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Customer Purchase Metric Related To...",
		Samples: []string{"None", "1.0", "0.0"}},
	{Name: "customertype", Type: TypeString, Categorical: true, PII: PIILow, Masking: MaskFaker,
		Description: "Type of customer",
		Samples: []string{"PotentialBuyer", "ExistingCustomer", "NewLead", "Prospect", "ReturningCustomer"}},
	{Name: "continuepq", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskFaker,
		Description: "Timestamp indicating a specific event",
		Samples: []string{"2024-01-15 10:30:00", "2024-02-20 14:45:30", "2024-03-10 08:00:15", "2024-04-25 16:22:45", "2024-05-05 21:59:59"}},
	{Name: "shipmenttype", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Type of shipment",
		Samples: []string{"Inland", "Inland, Import", "Import", "Export", "Export Import "}},
	{Name: "leadgrade", Type: TypeInt, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Lead grade based on quality",
		Samples: []string{"0.0", "1.0", "None", "7.0", "2.0"}},
	{Name: "leadrank", Type: TypeInt, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Rank of the lead",
		Samples: []string{"None", "0.0", "1.0", "7.0", "5.0"}},
	{Name: "leadscore", Type: TypeDouble, Categorical: false, PII: PIINone, Masking: MaskNone,
		Description: "Numerical lead score",
		Samples: []string{"85.2", "72.5", "91.8", "63.1", "48.7"}},
	{Name: "exitpointurl", Type: TypeString, Categorical: false, PII: PIILow, Masking: MaskRedact,
		Description: "URL the user exited on",
		Samples: []string{"https://example.com/page1", "https://example.com/page2", "https://example.com/page3", "https://example.com/page4", "https://example.com/page5"}},
	{Name: "mktcategory", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Marketing category",
		Samples: []string{"Direct", "Referral", "SEO", "Non Brand Paid(Search)", "Brand Paid"}},
	{Name: "mktcategoryfinal", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Final marketing category",
		Samples: []string{"SEO", "Referral", "CRM", "Direct", "Direct-Mobile APP"}},
	{Name: "lead_lob", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Line of business for the lead.",
		Samples: []string{"Workmen Compensation", "Group Personal Accident", "Professional Indemnity", "Asset", "Group Health Insurance"}},
	{Name: "booking_lob", Type: TypeString, Categorical: true, PII: PIINone, Masking: MaskNone,
		Description: "Line of business for the booking.",
		Samples: []string{"Marine Insurance", "Workmen Compensation", "Group Term Life", "Asset", "Professional Indemnity"}},
}
