package domain

type SubnetSpec struct {
	Name          string
	AddressPrefix string
}

type NetworkSpec struct {
	Name         string
	AddressSpace string
	Location     string
	Subnets      []SubnetSpec
	Tags         map[string]string
}
