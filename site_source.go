package eosched

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadSites reads the target-site list from a semicolon-delimited CSV
// file, one site per row: ID;score;name;...;...;...;longitudeDeg;
// latitudeDeg;altitude. Grounded on reader/SitesReader.java's readSites,
// column-for-column (index 1 score, 2 name, 6 longitude, 7 latitude, 8
// altitude), using the standard library's encoding/csv rather than a
// third-party CSV package: none of the retrieved example repos imports
// one, so there is no ecosystem convention in the pack to follow here
// (see DESIGN.md).
func ReadSites(path string) ([]Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Reason: "opening site list: " + err.Error()}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ','
	r.FieldsPerRecord = -1

	var sites []Site
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ConfigError{Reason: "reading site list: " + err.Error()}
		}
		if len(record) == 0 {
			continue
		}
		line := record[0]
		if strings.Contains(line, "ID") {
			continue
		}
		fields := strings.Split(strings.TrimSpace(line), ";")
		if len(fields) < 9 {
			continue
		}
		score, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		name := fields[2]
		lonDeg, err := strconv.ParseFloat(fields[6], 64)
		if err != nil {
			continue
		}
		latDeg, err := strconv.ParseFloat(fields[7], 64)
		if err != nil {
			continue
		}
		altitude, err := strconv.ParseFloat(fields[8], 64)
		if err != nil {
			continue
		}
		sites = append(sites, NewSite(name, latDeg, lonDeg, altitude, score, 0))
	}
	return sites, nil
}
