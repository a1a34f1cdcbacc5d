package lookup

// Listing type labels the world menu builds sections for.
const (
	TypeDestinations = "Destinations"
	TypeExpedition   = "Expedition"
	TypeMagical      = "Magical"
	TypeRemote       = "Remote"
)

var (
	defaultRegions = mustTable(
		Entry{"399ad996ae4c7d73d6c76c23f37d82d6", "North"},
		Entry{"507b50dc8ad4cdb2f6a76b3b9dae4495", "East"},
		Entry{"76d61dac8cc6e4cf742c8471d132c94e", "South"},
		Entry{"3ea253ded5d0f891c3cad2351dd53cdc", "West"},
	)

	defaultStates = mustTable(
		Entry{"ad10ba606be737d1078f07f9908829b4", "Andaman and Nicobar Islands"},
		Entry{"28b6d1dbcfb990896fb4f8711d7da62e", "Assam"},
		Entry{"64ba3ab8aa1d7ae2901e635c9eac3874", "Chandigarh"},
		Entry{"800202a439b7b1baf81ef8b346c75eec", "Daman and Diu"},
		Entry{"0752d49ff4b7934a8e62cceb9f5106e7", "Delhi"},
		Entry{"6074830e229351dfef112987140a57ad", "Goa"},
		Entry{"a2a3be127b8e0a53fb70ffbdece9ab99", "Gujarat"},
		Entry{"a75a9edbdeb5980a78e5b7413bac1a5b", "Himachal Pradesh"},
		Entry{"5a4904f07ee4ca4385eb1870c197fd1e", "Jammu and Kashmir"},
		Entry{"7b793578505b92f306870e4705c2b127", "Karnataka"},
		Entry{"77409c58b0af6aae372478b002b2fb6f", "Kerala"},
		Entry{"54b36ad0f262ab43edb6e04e278cfb2a", "Ladakh"},
		Entry{"abf87105ac55f215479efed59907ea5e", "Madhya Pradesh"},
		Entry{"a77628e4ab0ceb3b5c9ccb5996759d76", "Maharashtra"},
		Entry{"ebdadb5ae73cb9abeae676ba4da26313", "Odisha"},
		Entry{"b7e645b2e0702aa56a911efc98db84e9", "Puducherry"},
		Entry{"e15b91e12a0e6e8bd81c272605b1fb4c", "Punjab"},
		Entry{"3ae4277f542ead2705a8f5b9b0446b25", "Rajasthan"},
		Entry{"ff11fe1330fa75a4e21918977c97e626", "Sikkim"},
		Entry{"00907620a08c8e173db6a11d6388bf88", "Tamil Nadu"},
		Entry{"647579f4c50c51332ac6bad30e138228", "Uttar Pradesh"},
		Entry{"cc3315caeec947d84d8579fc254552b6", "Uttarakhand"},
		Entry{"a93bc618a41e06fbd0c5eb8dc370118b", "West Bengal"},
	)

	defaultListingTypes = mustTable(
		Entry{"620b8a0b09a3161b42dde242", TypeExpedition},
		Entry{"620b8a0b09a31615a3dde240", TypeMagical},
		Entry{"620b8a0b09a3165b87dde23f", TypeRemote},
		Entry{"620b8a0b09a31621fedde23e", TypeDestinations},
	)

	defaultContinents = mustTable(
		Entry{"620b8a0b09a3162a83dde11c", "South America"},
		Entry{"620b8a0b09a3163272dde109", "North America"},
		Entry{"620b8a0b09a316172bdde0f6", "Europe"},
		Entry{"620b8a0b09a3166422dde0e2", "Australia"},
		Entry{"620b8a0b09a31674a9dde0d0", "Asia"},
		Entry{"620b8a0b09a3168facdde0bc", "Oceania"},
		Entry{"620b8a0b09a3165815dde0a8", "Africa"},
	)
)

// Default returns the tables of the production CMS.
func Default() Tables {
	return Tables{
		Regions:      defaultRegions,
		States:       defaultStates,
		Continents:   defaultContinents,
		ListingTypes: defaultListingTypes,
	}
}
