package handler

// NavLink is one entry of the storefront navigation bar. Registered is false
// for pages the navigation links to but the server does not serve.
type NavLink struct {
	Label      string `json:"label"`
	Path       string `json:"path"`
	Registered bool   `json:"registered"`
}

var navigation = []NavLink{
	{Label: "Início", Path: "/", Registered: true},
	{Label: "Produtos", Path: "/products", Registered: true},
	{Label: "Ofertas", Path: "/offers", Registered: false},
	{Label: "Açougue", Path: "/butchery", Registered: false},
	{Label: "Sobre", Path: "/about", Registered: true},
	{Label: "Contato", Path: "/contact", Registered: true},
	{Label: "Carrinho", Path: "/cart", Registered: true},
}

func Navigation() []NavLink {
	out := make([]NavLink, len(navigation))
	copy(out, navigation)
	return out
}
