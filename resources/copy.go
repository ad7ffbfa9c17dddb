package resources

// Copy shown on the landing view.
const (
	AppName        = "Allure du Chic"
	BrandName      = "ALLURE"
	BrandNameSub   = "DU CHIC"
	Tagline        = "BESPOKE LUXURY"
	TaglineSmall   = "Made to Order • Made for You"
	ComingSoon     = "COMING SOON"
	Description    = "An exclusive collection of made-to-order luxury pieces, crafted for the discerning few who appreciate true elegance."
	SignupTitle    = "Join Our VIP List"
	SignupSubtitle = "Be the first to experience exclusive access"
	Placeholder    = "Enter your email"
	SubmitLabel    = "NOTIFY ME"
	Confirmation   = "Welcome to the elite circle"
	Footer         = "© 2025 Allure du Chic. All rights reserved."
)

// Palette, as 0xRRGGBB.
const (
	ColorGold        = 0xB8860B
	ColorBackground  = 0x0A0A0A
	ColorGradientMid = 0x1A1A1A
	ColorMuted       = 0x999999
	ColorDim         = 0x666666
	ColorFooter      = 0x444444
)
