package models

// AllSites is the dropdown value selecting every launch site
const AllSites = "ALL"

// Known launch sites in the source dataset
const (
	SiteCCAFSLC40  = "CCAFS LC-40"
	SiteVAFBSLC4E  = "VAFB SLC-4E"
	SiteKSCLC39A   = "KSC LC-39A"
	SiteCCAFSSLC40 = "CCAFS SLC-40"
)
