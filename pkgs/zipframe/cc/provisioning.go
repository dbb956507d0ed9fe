package cc

import "github.com/keskad/zipgw/pkgs/mappings"

// Minimal Smart Start provisioning-list support, restricted to the
// add-by-DSK / remove-by-DSK pair the DSK data model already commits to
// (no SmartStart metadata TLVs — those aren't specified).
func init() {
	register(mappings.CCNetworkManagementInstallationMaint, 0x0C, decodeProvisioningListReport)

	registerEncoder(mappings.CCNetworkManagementInstallationMaint, 0x0A, encodeProvisioningListSet)
	registerEncoder(mappings.CCNetworkManagementInstallationMaint, 0x0B, encodeProvisioningListGet)
}

// decodeProvisioningListReport decodes provisioning_list_report:
// seq_no(1), dsk_length(1), dsk(dsk_length).
func decodeProvisioningListReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 2 {
		cmd.Value = body
		return cmd
	}
	dskLen := int(body[1])
	dsk := body[2:]
	if dskLen > 0 && len(dsk) > dskLen {
		dsk = dsk[:dskLen]
	}
	cmd.Fields = Fields{
		"seq_no":       body[0],
		"dsk_length":   dskLen,
		"dsk":          dsk,
	}
	return cmd
}

// encodeProvisioningListSet adds a node to the provisioning list by DSK
// when dsk is non-empty, or removes it (a zero-length DSK entry) when
// remove=true.
func encodeProvisioningListSet(params map[string]any) ([]byte, error) {
	seqNo, _ := params["seq_no"].(byte)
	dsk, _ := params["dsk"].([]byte)
	remove, _ := params["remove"].(bool)
	if remove {
		return []byte{seqNo, 0x00}, nil
	}
	out := []byte{seqNo, byte(len(dsk))}
	return append(out, dsk...), nil
}

func encodeProvisioningListGet(params map[string]any) ([]byte, error) {
	seqNo, _ := params["seq_no"].(byte)
	dsk, _ := params["dsk"].([]byte)
	out := []byte{seqNo, byte(len(dsk))}
	return append(out, dsk...), nil
}
