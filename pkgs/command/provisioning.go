package command

import (
	"github.com/keskad/zipgw/pkgs/mappings"
	"github.com/keskad/zipgw/pkgs/zipframe/cc"
)

// ProvisioningListAdd adds a node to the Smart Start provisioning list by
// DSK, admitted only while the coordinator is idle.
type ProvisioningListAdd struct {
	base
	dsk []byte
}

func NewProvisioningListAdd(dsk []byte, opts ...Option) (*ProvisioningListAdd, error) {
	o := Options{Retries: 2}
	if err := applyOptions(&o, opts); err != nil {
		return nil, err
	}
	return &ProvisioningListAdd{
		base: newBase(mappings.CCNetworkManagementInstallationMaint, o.Retries, []Mode{ModeIdle}),
		dsk:  dsk,
	}, nil
}

func (c *ProvisioningListAdd) Encode() ([]byte, error) {
	return cc.Encode(mappings.CCNetworkManagementInstallationMaint, 0x0A, map[string]any{
		"seq_no": c.seqNumber,
		"dsk":    c.dsk,
		"remove": false,
	})
}

// ProvisioningListRemove deletes a provisioning-list entry by DSK.
type ProvisioningListRemove struct {
	base
	dsk []byte
}

func NewProvisioningListRemove(dsk []byte, opts ...Option) (*ProvisioningListRemove, error) {
	o := Options{Retries: 2}
	if err := applyOptions(&o, opts); err != nil {
		return nil, err
	}
	return &ProvisioningListRemove{
		base: newBase(mappings.CCNetworkManagementInstallationMaint, o.Retries, []Mode{ModeIdle}),
		dsk:  dsk,
	}, nil
}

func (c *ProvisioningListRemove) Encode() ([]byte, error) {
	return cc.Encode(mappings.CCNetworkManagementInstallationMaint, 0x0A, map[string]any{
		"seq_no": c.seqNumber,
		"dsk":    c.dsk,
		"remove": true,
	})
}
