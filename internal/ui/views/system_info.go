package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath   string
	Driver       string
	DataPaths    []string
	DataExists   []bool
	Users        int
	TotalBalance string
	HashPassword bool
}

func RenderSystemInfo(data SystemInfoItem) error {
	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Storage Driver", data.Driver},
	}

	for i, path := range data.DataPaths {
		status := pterm.Green("Found")
		if i < len(data.DataExists) && !data.DataExists[i] {
			status = pterm.Red("Not Found (Will be created)")
		}
		tableData = append(tableData, []string{"Data File", path + "  " + status})
	}

	credentials := "plaintext"
	if data.HashPassword {
		credentials = "bcrypt (new registrations)"
	}

	tableData = append(tableData,
		[]string{"Registered Users", pterm.Sprint(data.Users)},
		[]string{"Total Balance", data.TotalBalance},
		[]string{"Password Storage", credentials},
	)

	return pterm.DefaultTable.WithData(tableData).Render()
}
