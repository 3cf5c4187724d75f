package shortcut

import (
	"fmt"
	"strings"

	"github.com/lennarthald/toastkit/internal/powershell"
)

// missingMarker is printed by the read script when no shortcut exists at
// the path, keeping absence distinct from a script failure.
const missingMarker = "__toastkit_missing__"

// propertyStoreHelper gives the write script access to the shell link
// property store, where the application identity lives. The scripting
// shell can write every other link property but not these two.
const propertyStoreHelper = `Add-Type -TypeDefinition @'
using System;
using System.Runtime.InteropServices;

public static class LinkIdentity
{
    [DllImport("shell32.dll", CharSet = CharSet.Unicode)]
    private static extern int SHGetPropertyStoreFromParsingName(
        string pszPath, IntPtr pbc, int flags, ref Guid riid,
        [MarshalAs(UnmanagedType.Interface)] out IPropertyStore store);

    [ComImport, Guid("886d8eeb-8cf2-4446-8d02-cdba1dbdcf99"),
     InterfaceType(ComInterfaceType.InterfaceIsIUnknown)]
    private interface IPropertyStore
    {
        int GetCount(out uint count);
        int GetAt(uint index, out PropertyKey key);
        int GetValue(ref PropertyKey key, out PropVariant value);
        int SetValue(ref PropertyKey key, ref PropVariant value);
        int Commit();
    }

    [StructLayout(LayoutKind.Sequential, Pack = 4)]
    private struct PropertyKey
    {
        public Guid fmtid;
        public uint pid;
    }

    [StructLayout(LayoutKind.Sequential)]
    private struct PropVariant
    {
        public ushort vt;
        private ushort r1, r2, r3;
        public IntPtr p;
        private int r4;
    }

    private static readonly Guid AppUserModel =
        new Guid("9F4C2855-9F79-4B39-A8D0-E1D42DE1D5F3");

    private const int GPS_READWRITE = 2;
    private const ushort VT_LPWSTR = 31;
    private const ushort VT_CLSID = 72;

    public static void SetAppId(string path, string value)
    {
        SetValue(path, 5, new PropVariant { vt = VT_LPWSTR, p = Marshal.StringToCoTaskMemUni(value) });
    }

    public static void SetActivator(string path, string value)
    {
        IntPtr p = Marshal.AllocCoTaskMem(16);
        Marshal.Copy(new Guid(value).ToByteArray(), 0, p, 16);
        SetValue(path, 26, new PropVariant { vt = VT_CLSID, p = p });
    }

    private static void SetValue(string path, uint pid, PropVariant value)
    {
        Guid iid = typeof(IPropertyStore).GUID;
        IPropertyStore store;
        Marshal.ThrowExceptionForHR(SHGetPropertyStoreFromParsingName(
            path, IntPtr.Zero, GPS_READWRITE, ref iid, out store));
        try
        {
            PropertyKey key = new PropertyKey { fmtid = AppUserModel, pid = pid };
            Marshal.ThrowExceptionForHR(store.SetValue(ref key, ref value));
            Marshal.ThrowExceptionForHR(store.Commit());
        }
        finally
        {
            Marshal.FreeCoTaskMem(value.p);
            Marshal.ReleaseComObject(store);
        }
    }
}
'@
`

// BuildReadScript returns the script that prints the full property set of
// the shortcut at path as one line of JSON, or the missing marker when no
// shortcut exists.
func BuildReadScript(path string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "$path = %s\n", powershell.Quote(path))
	fmt.Fprintf(&b, "if (-not (Test-Path -LiteralPath $path)) { Write-Output '%s'; exit 0 }\n", missingMarker)
	b.WriteString("$link = (New-Object -ComObject WScript.Shell).CreateShortcut($path)\n")
	b.WriteString("$dir = Split-Path -LiteralPath $path\n")
	b.WriteString("$leaf = Split-Path -Leaf -LiteralPath $path\n")
	b.WriteString("$item = (New-Object -ComObject Shell.Application).NameSpace($dir).ParseName($leaf)\n")
	b.WriteString("$appId = $item.ExtendedProperty('System.AppUserModel.ID')\n")
	b.WriteString("$clsid = $item.ExtendedProperty('System.AppUserModel.ToastActivatorCLSID')\n")
	b.WriteString(`[PSCustomObject]@{
  target_path    = $link.TargetPath
  arguments      = $link.Arguments
  comment        = $link.Description
  working_folder = $link.WorkingDirectory
  window_state   = $link.WindowStyle
  icon_path      = ($link.IconLocation -replace ',\d+$', '')
  app_id         = [string]$appId
  activator_id   = $(if ($clsid) { ('{0:B}' -f [guid]$clsid).ToUpper() } else { '' })
} | ConvertTo-Json -Compress
`)

	return b.String()
}

// BuildWriteScript returns the script that replaces the shortcut at path
// with the record. The existing file is removed first so properties from a
// previous shortcut cannot survive the rewrite.
func BuildWriteScript(path string, rec Record) string {
	var b strings.Builder

	if rec.AppID != "" || rec.ActivatorID != "" {
		b.WriteString(propertyStoreHelper)
	}
	fmt.Fprintf(&b, "$path = %s\n", powershell.Quote(path))
	b.WriteString("Remove-Item -LiteralPath $path -ErrorAction SilentlyContinue\n")
	b.WriteString("$link = (New-Object -ComObject WScript.Shell).CreateShortcut($path)\n")
	fmt.Fprintf(&b, "$link.TargetPath = %s\n", powershell.Quote(rec.TargetPath))
	fmt.Fprintf(&b, "$link.Arguments = %s\n", powershell.Quote(rec.Arguments))
	fmt.Fprintf(&b, "$link.Description = %s\n", powershell.Quote(rec.Comment))
	fmt.Fprintf(&b, "$link.WorkingDirectory = %s\n", powershell.Quote(rec.WorkingFolder))
	fmt.Fprintf(&b, "$link.WindowStyle = %d\n", int(rec.WindowState))
	if rec.IconPath != "" {
		fmt.Fprintf(&b, "$link.IconLocation = %s\n", powershell.Quote(rec.IconPath+",0"))
	}
	b.WriteString("$link.Save()\n")
	if rec.AppID != "" {
		fmt.Fprintf(&b, "[LinkIdentity]::SetAppId($path, %s)\n", powershell.Quote(rec.AppID))
	}
	if rec.ActivatorID != "" {
		fmt.Fprintf(&b, "[LinkIdentity]::SetActivator($path, %s)\n", powershell.Quote(rec.ActivatorID))
	}

	return b.String()
}
