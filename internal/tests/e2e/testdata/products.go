package testdata

// Sample catalog entries used by the end-to-end suite.
type SampleProduct struct {
	Name        string
	Description string
	Price       string
	Quantity    int
}

var (
	WaterFilter = SampleProduct{
		Name:        "Water Filter",
		Description: "Under-sink carbon block filter",
		Price:       "19.99",
		Quantity:    10,
	}

	ShowerFilter = SampleProduct{
		Name:        "Shower Filter",
		Description: "Vitamin C shower head filter",
		Price:       "34.50",
		Quantity:    4,
	}

	// PixelPNG is a valid 1x1 transparent PNG.
	PixelPNG = []byte{
		0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
		0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
		0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
		0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
		0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
	}
)
