package domain

// ResourceKind names a server-managed collection.
type ResourceKind string

const (
	KindCategory  ResourceKind = "category"
	KindProduct   ResourceKind = "product"
	KindUser      ResourceKind = "user"
	KindOrder     ResourceKind = "order"
	KindOrderItem ResourceKind = "order-item"
)

var kindPaths = map[ResourceKind]string{
	KindCategory:  "/categories/",
	KindProduct:   "/products/",
	KindUser:      "/users/",
	KindOrder:     "/orders/",
	KindOrderItem: "/order-items/",
}

// Path is the collection endpoint of the kind.
func (k ResourceKind) Path() string { return kindPaths[k] }

// Plural is the name the console uses for the kind's list.
func (k ResourceKind) Plural() string {
	switch k {
	case KindCategory:
		return "categories"
	case KindOrderItem:
		return "order-items"
	default:
		return string(k) + "s"
	}
}

// ParseKind accepts singular or plural kind names.
func ParseKind(s string) (ResourceKind, bool) {
	for k := range kindPaths {
		if s == string(k) || s == k.Plural() {
			return k, true
		}
	}
	return "", false
}

// Form identifies the input form an error message belongs to.
type Form string

const (
	FormLogin     Form = "login"
	FormRegister  Form = "register"
	FormCategory  Form = "category"
	FormProduct   Form = "product"
	FormOrder     Form = "order"
	FormOrderItem Form = "order-item"
)

// Panel is a top-level screen of the console.
type Panel string

const (
	PanelLogin   Panel = "login"
	PanelCatalog Panel = "catalog"
)
