package terminal

import "testing"

func TestBox_Render(t *testing.T) {
	tests := []struct {
		name string
		box  *Box
		want string
	}{
		{
			name: "single line",
			box:  NewBox("hello"),
			want: "***********\n*  hello  *\n***********",
		},
		{
			name: "lines padded to widest",
			box:  NewBox("ab\ncde"),
			want: "*********\n*  ab   *\n*  cde  *\n*********",
		},
		{
			name: "custom frame",
			box:  &Box{Text: "x", LineCharacter: "#", Padding: 1},
			want: "#####\n# x #\n#####",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Render(); got != tt.want {
				t.Errorf("Render() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
